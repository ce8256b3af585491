// Package catalog holds the authored event content of the game.
//
// Events are grouped into four tables that fix their gating and repeat
// behaviour. The tables are never handed out directly; All returns copies.
package catalog

import "github.com/tatianab/budget-survival/internal/models"

// Inventory flags. Most of them mark an unresolved problem.
const (
	FlagMonthlyTicket   = "Bilet Miesięczny"
	FlagNoCar           = "Brak Auta"
	FlagBrokenCar       = "Zepsute Auto"
	FlagBreakdownRisk   = "Ryzyko Awarii"
	FlagUntreatedTooth  = "Ząb Nieleczony"
	FlagUntreatedTooth2 = "Ząb Nieleczony II"
	FlagMissingTooth    = "Brak Zęba"
	FlagMice            = "Myszy"
	FlagPigeons         = "Gołębie"
	FlagIllness         = "Choroba"
)

const (
	ReflexEventDescription     = "Stoisz na pasach. Światło zaraz się zmieni."
	MouseCatchEventDescription = "Znowu widzisz myszy, tym razem jest ich więcej."
)

type choice = models.Choice

// repeatable events recur until the pool is reset.
var repeatable = []models.Event{
	{Description: "Promocja w markecie spożywczym.", Choices: []choice{
		{Label: "Robię duże zakupy", Cost: 80, HappinessDelta: 2, ComfortDelta: 6},
		{Label: "Tylko niezbędne", Cost: 30},
		{Label: "Nic nie kupuję", HappinessDelta: -2, ComfortDelta: -2},
	}},
	{Description: "Gotujesz, ale zabrakło ci składnika.", Choices: []choice{
		{Label: "Idę po niego do sklepu", Cost: 10, HappinessDelta: 2, ComfortDelta: 2},
		{Label: "Poradzę sobie bez niego", HappinessDelta: -2, ComfortDelta: -2},
	}},
	{Description: "Twój znajomy ma urodziny.", Choices: []choice{
		{Label: "Kupuję super prezent", Cost: 100, HappinessDelta: 5, ComfortDelta: 2},
		{Label: "Dorzucam się do prezentu ze znajomymi", Cost: 30, HappinessDelta: 2},
		{Label: "Nie kupuję prezentu", HappinessDelta: -3, ComfortDelta: -2},
	}},
	{Description: "10zł na ulicy.", Choices: []choice{
		{Label: "Biorę je!", Cost: 10, HappinessDelta: 5, ComfortDelta: -1},
		{Label: "Poradzę sobię bez nich", ComfortDelta: 1},
	}},
	{Description: "Znajomi zapraszają cię na kawę.", Choices: []choice{
		{Label: "Carmel macchiato z bitą śmietaną", Cost: 25, HappinessDelta: 8, ComfortDelta: 8},
		{Label: "Zwykła czarna", Cost: 8, HappinessDelta: 4, ComfortDelta: 1},
		{Label: "Przyjdę dla towarzystwa", HappinessDelta: 2},
	}},
	{Description: "Szef poprosił cię o zostanie dłużej w pracy.", Choices: []choice{
		{Label: "Biorę nadgodziny", Cost: -250, HappinessDelta: -2, ComfortDelta: -2},
		{Label: "Wracam do domu 16:00", HappinessDelta: 2},
	}},
	{Description: "Dawno nie byłeś w kinie.", Choices: []choice{
		{Label: "Bilet VIP i duży popcorn", Cost: 80, HappinessDelta: 25, ComfortDelta: 20},
		{Label: "Zwykły bilet, bez jedzenia", Cost: 30, HappinessDelta: 15, ComfortDelta: 5},
		{Label: "Zostanę w domu", HappinessDelta: -5},
	}},
	{Description: ReflexEventDescription, Minigame: models.MinigameReflex},
}

// conditional events fire at most once per pool and depend on flags.
var conditional = []models.Event{
	{Description: "Musisz przesiąść się na autobus. Kupujesz bilet miesięczny?", RequiredItem: FlagNoCar, Choices: []choice{
		{Label: "Kupuję bilet miesięczny", Cost: 120, HappinessDelta: 2, ComfortDelta: 2, FlagToAdd: FlagMonthlyTicket},
		{Label: "Pojeżdżę na jednorazowych"},
	}},
	{Description: "Widzisz kontrolera na przystanku.", RequiredItem: FlagNoCar, ForbiddenItem: FlagMonthlyTicket, Choices: []choice{
		{Label: "Kupuję bilet", Cost: 3, HappinessDelta: 2, ComfortDelta: 2},
		{Label: "Mandat", Cost: 100, HappinessDelta: -5, ComfortDelta: -5},
		{Label: "Wysiadam na tym przystanku", HappinessDelta: -10, ComfortDelta: -15},
	}},
	{Description: "Obudził Cię potworny ból zęba. Opuchlizna jest ogromna.", ForbiddenItem: FlagUntreatedTooth, Choices: []choice{
		{Label: "Prywatny dentysta", Cost: 300, HappinessDelta: 10, ComfortDelta: 10},
		{Label: "Pójdę na NFZ", HappinessDelta: -15, ComfortDelta: -15},
		{Label: "Tabletki przeciwbólowe", Cost: 30, HappinessDelta: -10, ComfortDelta: -10, FlagToAdd: FlagUntreatedTooth},
	}},
	{Description: "Twój ząb jest zupełnie zepsuty. Ból jest nie do zniesienia", RequiredItem: FlagUntreatedTooth2, Choices: []choice{
		{Label: "Usuwam ząb", Cost: 200, HappinessDelta: -60, ComfortDelta: -90, FlagToAdd: FlagMissingTooth, FlagToRemove: FlagUntreatedTooth2},
	}},
}

// repairs repeat while their problem flag is held and stop once a choice
// removes it.
var repairs = []models.Event{
	{Description: MouseCatchEventDescription, RequiredItem: FlagMice, Minigame: models.MinigameMouseCatch, Choices: []choice{
		{Label: "Tym razem dzwonię po specjalistów", Cost: 220, FlagToRemove: FlagMice},
		{Label: "To nowa codzienność", HappinessDelta: -10, ComfortDelta: -12},
	}},
	{Description: "Twój samochód jest zupełnie nie sprawny.", RequiredItem: FlagBrokenCar, Choices: []choice{
		{Label: "Próbuję go odratować", Cost: 800, HappinessDelta: 1, ComfortDelta: 2, FlagToAdd: FlagBreakdownRisk, FlagToRemove: FlagBrokenCar},
		{Label: "Teraz tylko złom", HappinessDelta: -10, ComfortDelta: -12, FlagToAdd: FlagNoCar, FlagToRemove: FlagBrokenCar},
	}},
	{Description: "Pora rzeczywiście zająć się swoim samochodem.", RequiredItem: FlagBreakdownRisk, Choices: []choice{
		{Label: "Naprawa w ASO", Cost: 800, HappinessDelta: 1, ComfortDelta: 2, FlagToRemove: FlagBreakdownRisk},
		{Label: "Znowu Mirek", Cost: 250, HappinessDelta: -10, ComfortDelta: -12},
	}},
	{Description: "Gołębie regularnie wracają na twój balkon.", RequiredItem: FlagPigeons, Choices: []choice{
		{Label: "Inwestuję w siatkę przeciw ptakom", Cost: 120, HappinessDelta: 10, ComfortDelta: 12, FlagToRemove: FlagPigeons},
		{Label: "Kupuję plastikowego kruka", Cost: 60, HappinessDelta: 2, ComfortDelta: 5, FlagToRemove: FlagPigeons},
		{Label: "Zostawiam je w spokoju", HappinessDelta: 2, ComfortDelta: -12},
	}},
	{Description: "Ząb nie przestaje boleć. Potrzebujesz leczenia kanałowego.", RequiredItem: FlagUntreatedTooth, Choices: []choice{
		{Label: "Prywatny dentysta", Cost: 400, FlagToRemove: FlagUntreatedTooth},
		{Label: "Pójdę na NFZ", HappinessDelta: -15, ComfortDelta: -15, FlagToRemove: FlagUntreatedTooth},
		{Label: "Dalej go ignoruję", Cost: 30, HappinessDelta: -25, ComfortDelta: -25, FlagToAdd: FlagUntreatedTooth2, FlagToRemove: FlagUntreatedTooth},
	}},
}

// oneOffs fire at most once per pool with no gating.
var oneOffs = []models.Event{
	{Description: "Zauważyłeś, że twoje buty się rozklejają.", Choices: []choice{
		{Label: "Kupuję nowe firmowe", Cost: 250, HappinessDelta: 15, ComfortDelta: 15},
		{Label: "Kupuję ekonomiczne", Cost: 120, HappinessDelta: 10, ComfortDelta: 2},
		{Label: "Naprawiam swoje stare", HappinessDelta: -5, ComfortDelta: -5},
	}},
	{Description: "Twój samochód wydaje dziwne dźwięki. To chyba silnik.", Choices: []choice{
		{Label: "Naprawa w ASO", Cost: 600, HappinessDelta: 5, ComfortDelta: 5},
		{Label: "Zaprzyjaźniony mechanik Mirek", Cost: 200, HappinessDelta: 2, ComfortDelta: -2, FlagToAdd: FlagBreakdownRisk},
		{Label: "Jakie dźwięki?", HappinessDelta: 1, ComfortDelta: -5, FlagToAdd: FlagBrokenCar},
	}},
	{Description: "Zauważyłeś mysz w swoim mieszkaniu.", Choices: []choice{
		{Label: "Wezwę specjalistów", Cost: 200, HappinessDelta: 5, ComfortDelta: 5},
		{Label: "Kupuję i zakładam pułapkę", Cost: 20, HappinessDelta: 1, ComfortDelta: -2},
		{Label: "Ignorujesz ją", ComfortDelta: -3, FlagToAdd: FlagMice},
	}},
	{Description: "Twój ulubiony artysta daje koncert w twoim mieście.", Choices: []choice{
		{Label: "Kupuję bilety", Cost: 120, HappinessDelta: 20, ComfortDelta: 10},
		{Label: "Biorę nadgodziny żeby kupić bilety", Cost: 40, HappinessDelta: 15, ComfortDelta: -2},
		{Label: "Siedzę w domu", HappinessDelta: -5, ComfortDelta: -5},
	}},
	{Description: "W pracy zbierają na 'Szlachetną Paczkę'. Wypada się dorzucić.", Choices: []choice{
		{Label: "Daję 100 zł", Cost: 100, HappinessDelta: 10, ComfortDelta: 5},
		{Label: "Daję 20 zł", Cost: 20, HappinessDelta: 5},
		{Label: "Mówię, że nie mam gotówki", HappinessDelta: -5, ComfortDelta: -5},
	}},
	{Description: "Zorientowałeś się, że płacisz za 5 serwisów VOD, a oglądasz jeden.", Choices: []choice{
		{Label: "Zostawiam wszystko, może się przyda", Cost: 120, HappinessDelta: 10, ComfortDelta: 10},
		{Label: "Anuluję wszystko poza jednym", Cost: 30, HappinessDelta: 2},
		{Label: "Anuluję wszystko, czytam książki", HappinessDelta: -10, ComfortDelta: 5},
	}},
	{Description: "Dostałeś mail-a o wygranej w loterii.", Choices: []choice{
		{Label: "Klikam w link", Cost: 400, HappinessDelta: -20, ComfortDelta: -20},
		{Label: "Zgłaszam nadawcę", HappinessDelta: 2, ComfortDelta: 5},
		{Label: "Ignoruję go", ComfortDelta: 3},
	}},
	{Description: "Gołębie uwiły sobie gniazdo na twoim balkonie.", Choices: []choice{
		{Label: "Inwestuję w siatkę przeciw ptakom", Cost: 120, HappinessDelta: 10, ComfortDelta: 12},
		{Label: "Kupuję plastikowego kruka", Cost: 60, HappinessDelta: 2, ComfortDelta: 5},
		{Label: "Niszczę gniazdo", ComfortDelta: 3, FlagToAdd: FlagPigeons},
	}},
	{Description: "Masz ochotę rozwinąć swoją pasję (np. malowanie, gry, sport).", Choices: []choice{
		{Label: "Kupuję profesjonalny sprzęt", Cost: 250, HappinessDelta: 30, ComfortDelta: 10},
		{Label: "Kupuję używane akcesoria", Cost: 90, HappinessDelta: 15, ComfortDelta: 5},
		{Label: "Rezygnuję, nie stać mnie", HappinessDelta: -15, ComfortDelta: -10},
	}},
	{Description: "Nie chce ci się gotować po pracy. Pizza brzmi kusząco.", Choices: []choice{
		{Label: "Pizza z supermarketu", Cost: 15, HappinessDelta: 6, ComfortDelta: 10},
		{Label: "Zamawiam pizzę", Cost: 50, HappinessDelta: 10, ComfortDelta: 15},
		{Label: "Obejdę się smakiem", HappinessDelta: -10, ComfortDelta: -10},
	}},
	{Description: "Czujesz się fatalnie. Gorączka i katar.", Choices: []choice{
		{Label: "Idę do apteki po komplet leków", Cost: 120, HappinessDelta: 10, ComfortDelta: 10},
		{Label: "Domowe sposoby (Czosnek)", Cost: 20, HappinessDelta: -5, ComfortDelta: -5},
		{Label: "Ignoruję i idę do pracy", HappinessDelta: -20, ComfortDelta: -30, FlagToAdd: FlagIllness},
	}},
	{Description: "Poplamiłeś swoją ulubioną koszulkę olejem.", Choices: []choice{
		{Label: "Piorę ją w domu", HappinessDelta: -2, ComfortDelta: -2},
		{Label: "Oddaję ją do pralni", Cost: 50, HappinessDelta: 10, ComfortDelta: 10},
	}},
	{Description: "Sąsiedzi zbierają na renowację elewacji w waszym bloku.", Choices: []choice{
		{Label: "Dołożę się ", Cost: 150, HappinessDelta: 15},
		{Label: "Ignoruję ogłoszenia", ComfortDelta: -5},
	}},
	{Description: "Musisz iśc do fryzjera.", Choices: []choice{
		{Label: "Znajomy hobbysta", Cost: 10, HappinessDelta: 2},
		{Label: "Profesjonalista", Cost: 80, HappinessDelta: 10, ComfortDelta: 10},
		{Label: "Zrób to samemu", HappinessDelta: -5, ComfortDelta: -7},
	}},
	{Description: "Musisz zapłacić rachunki.", Choices: []choice{
		{Label: "Płacę", Cost: 480, HappinessDelta: 10, ComfortDelta: 10},
		{Label: "Nie płacę", HappinessDelta: -50, ComfortDelta: -80},
	}},
	{Description: "Znajomy poprosił cię o pożyczenie mu pieniędzy.", Choices: []choice{
		{Label: "Pożyczę pieniądze", Cost: 100, HappinessDelta: 20},
		{Label: "Nie pożyczę", HappinessDelta: -20},
	}},
}

var (
	calmDay = models.Event{
		Description: "Spokojny dzień. Brak wydarzeń.",
		Repeatable:  true,
		Minigame:    models.MinigameNone,
		Choices:     []choice{{Label: "Odpoczywam"}},
	}
	freeDay = models.Event{
		Description: "Dzień wolny. Odpoczywasz.",
		Repeatable:  true,
		Minigame:    models.MinigameNone,
		Choices:     []choice{{Label: "Super"}},
	}
)

// All returns a fresh copy of every catalog event. Callers may mutate or
// drop entries without affecting later calls.
func All() []models.Event {
	out := make([]models.Event, 0, Len())
	for _, e := range repeatable {
		out = append(out, withDefaults(e, true))
	}
	for _, e := range conditional {
		out = append(out, withDefaults(e, false))
	}
	for _, e := range repairs {
		out = append(out, withDefaults(e, true))
	}
	for _, e := range oneOffs {
		out = append(out, withDefaults(e, false))
	}
	return out
}

// Len is the number of catalog events.
func Len() int {
	return len(repeatable) + len(conditional) + len(repairs) + len(oneOffs)
}

// CalmDay is shown when the pool has been exhausted.
func CalmDay() models.Event { return calmDay.Clone() }

// FreeDay is shown when no pool event matches the player.
func FreeDay() models.Event { return freeDay.Clone() }

func withDefaults(e models.Event, repeat bool) models.Event {
	c := e.Clone()
	c.Repeatable = repeat
	if c.Minigame == "" {
		c.Minigame = models.MinigameNone
	}
	return c
}
