package assistant

import "fmt"

// PointEvent is a calendar entry occurring on a single day.
type PointEvent struct {
	Day   int
	Month int
	Title string
}

// RangeEvent spans an inclusive day-to-day interval. Ranges never cross the
// year boundary; comparisons are month-then-day.
type RangeEvent struct {
	StartDay   int
	StartMonth int
	EndDay     int
	EndMonth   int
	Title      string
}

// Academic calendar for the current school year. The assistant resolves
// date and month queries against these two lists.
var pointEvents = []PointEvent{
	{Day: 16, Month: 2, Title: "Día festivo por Carnavales"},
	{Day: 3, Month: 3, Title: "Inicio del año escolar"},
	{Day: 7, Month: 3, Title: "Reunión general de padres de familia"},
	{Day: 14, Month: 3, Title: "Feria de talleres extracurriculares"},
	{Day: 24, Month: 3, Title: "Simulacro nacional de sismo"},
	{Day: 28, Month: 3, Title: "Jornada de tutoría y orientación"},
	{Day: 1, Month: 5, Title: "Día festivo por el Día del Trabajo"},
	{Day: 30, Month: 5, Title: "Entrega de libretas del primer bimestre"},
	{Day: 29, Month: 6, Title: "Día festivo por San Pedro y San Pablo"},
	{Day: 6, Month: 7, Title: "Día del Maestro (celebración escolar)"},
	{Day: 18, Month: 7, Title: "Entrega de libretas del segundo bimestre"},
	{Day: 28, Month: 7, Title: "Día festivo por Fiestas Patrias"},
	{Day: 29, Month: 7, Title: "Día festivo por Fiestas Patrias"},
	{Day: 30, Month: 8, Title: "Día festivo por Santa Rosa de Lima"},
	{Day: 8, Month: 10, Title: "Día festivo por el Combate de Angamos"},
	{Day: 24, Month: 10, Title: "Entrega de libretas del tercer bimestre"},
	{Day: 1, Month: 11, Title: "Día festivo por Todos los Santos"},
	{Day: 8, Month: 12, Title: "Día festivo por la Inmaculada Concepción"},
	{Day: 19, Month: 12, Title: "Clausura del año escolar"},
}

var rangeEvents = []RangeEvent{
	{StartDay: 13, StartMonth: 4, EndDay: 30, EndMonth: 4, Title: "Evaluaciones del primer bimestre"},
	{StartDay: 25, StartMonth: 5, EndDay: 29, EndMonth: 5, Title: "Semana de la Educación Inicial"},
	{StartDay: 21, StartMonth: 7, EndDay: 1, EndMonth: 8, Title: "Vacaciones de medio año"},
	{StartDay: 13, StartMonth: 10, EndDay: 17, EndMonth: 10, Title: "Receso escolar del tercer bimestre"},
	{StartDay: 1, StartMonth: 12, EndDay: 12, EndMonth: 12, Title: "Evaluaciones finales"},
}

// monthTable maps every accepted spelling to its month number. Setiembre is
// the usual Peruvian spelling; septiembre is accepted too.
var monthTable = []struct {
	name string
	num  int
}{
	{"enero", 1},
	{"febrero", 2},
	{"marzo", 3},
	{"abril", 4},
	{"mayo", 5},
	{"junio", 6},
	{"julio", 7},
	{"agosto", 8},
	{"setiembre", 9},
	{"septiembre", 9},
	{"octubre", 10},
	{"noviembre", 11},
	{"diciembre", 12},
}

var monthNames = [13]string{"", "enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "setiembre", "octubre", "noviembre", "diciembre"}

func monthNumber(name string) (int, bool) {
	for _, m := range monthTable {
		if m.name == name {
			return m.num, true
		}
	}
	return 0, false
}

func monthName(num int) string {
	if num < 1 || num > 12 {
		return ""
	}
	return monthNames[num]
}

// contains reports whether (month, day) falls inside the inclusive span.
func (r RangeEvent) contains(day, month int) bool {
	afterStart := month > r.StartMonth || (month == r.StartMonth && day >= r.StartDay)
	beforeEnd := month < r.EndMonth || (month == r.EndMonth && day <= r.EndDay)
	return afterStart && beforeEnd
}

// coversMonth uses month granularity only: any range touching the month
// counts, a deliberately coarser check than contains.
func (r RangeEvent) coversMonth(month int) bool {
	return month >= r.StartMonth && month <= r.EndMonth
}

// span renders the full interval, e.g. "del 13 de abril al 30 de abril".
func (r RangeEvent) span() string {
	return fmt.Sprintf("del %d de %s al %d de %s", r.StartDay, monthName(r.StartMonth), r.EndDay, monthName(r.EndMonth))
}

// eventsOn lists everything happening on an exact date. Range matches carry
// their full span.
func eventsOn(day, month int) []string {
	var out []string
	for _, p := range pointEvents {
		if p.Day == day && p.Month == month {
			out = append(out, p.Title)
		}
	}
	for _, r := range rangeEvents {
		if r.contains(day, month) {
			out = append(out, fmt.Sprintf("%s (%s)", r.Title, r.span()))
		}
	}
	return out
}

// eventsIn lists every point event in the month plus every range covering
// it, each entry pre-formatted for bulleting.
func eventsIn(month int) []string {
	var out []string
	for _, p := range pointEvents {
		if p.Month == month {
			out = append(out, fmt.Sprintf("%d de %s: %s", p.Day, monthName(p.Month), p.Title))
		}
	}
	for _, r := range rangeEvents {
		if r.coversMonth(month) {
			out = append(out, fmt.Sprintf("%s (%s)", r.Title, r.span()))
		}
	}
	return out
}
