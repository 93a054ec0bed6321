package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// rule pairs a predicate with its responder. Rules are evaluated top to
// bottom and the first match wins, so the position of each entry is part of
// the assistant's behavior. Reordering two overlapping rules changes which
// one answers; the table below is the single place that order lives.
type rule struct {
	name    string
	match   func(in string) bool
	respond func(ctx context.Context, in string) (string, error)
}

var dateRe = regexp.MustCompile(`(\d{1,2})\s+de\s+([a-záéíóúñ]+)`)

// buildRules assembles the full table. Date and month resolution go first so
// that "qué eventos hay en marzo" never falls into the generic event rule,
// and the catch-all fallback closes the table.
func (e *Engine) buildRules() []rule {
	return []rule{
		{name: "specific_date", match: matchDate, respond: plain(dateResponse)},
		{name: "month_events", match: matchMonthQuery, respond: plain(monthQueryResponse)},
		{name: "greeting", match: keywords("hola", "buenos días", "buenos dias", "buenas tardes", "buenas noches", "buen día", "buen dia", "saludos", "buenas"), respond: e.greet},
		{name: "farewell", match: keywords("adiós", "adios", "hasta luego", "hasta pronto", "nos vemos", "chau", "chao", "me despido"), respond: e.fromPool(farewellPool)},
		{name: "thanks", match: keywords("gracias", "agradezco", "muy amable"), respond: e.fromPool(thanksPool)},
		{name: "navigation", match: keywords("dónde encuentro", "donde encuentro", "cómo encuentro", "como encuentro", "navegar", "sección", "seccion"), respond: fixed(navigationResponse)},
		{name: "capabilities", match: keywords("qué puedes hacer", "que puedes hacer", "en qué me puedes ayudar", "en que me puedes ayudar", "qué sabes", "que sabes", "funciones"), respond: fixed(capabilitiesResponse)},
		{name: "identity", match: keywords("quién eres", "quien eres", "cómo te llamas", "como te llamas", "tu nombre", "eres un bot", "eres un robot"), respond: fixed(identityResponse)},
		{name: "location", match: keywords("dónde están", "donde estan", "dónde queda", "donde queda", "dirección", "direccion", "ubicación", "ubicacion", "cómo llego", "como llego", "cómo llegar", "como llegar"), respond: fixed(locationResponse)},
		{name: "teacher_emails", match: allOf(keywords("correo", "email", "e-mail"), keywords("profesor", "docente", "maestro")), respond: fixed(teacherEmailsResponse)},
		{name: "contact", match: keywords("contacto", "contactar", "teléfono", "telefono", "correo", "email", "llamar", "comunicarme"), respond: fixed(contactResponse)},
		{name: "hours", match: keywords("horario", "hora de atención", "hora de atencion", "a qué hora", "a que hora", "atienden", "abren", "cierran"), respond: fixed(hoursResponse)},
		{name: "nurse", match: keywords("enfermería", "enfermeria", "enfermera", "tópico escolar", "topico escolar"), respond: fixed(nurseResponse)},
		{name: "counseling", match: keywords("psicología", "psicologia", "psicólogo", "psicologo", "psicóloga", "psicologa", "consejería", "consejeria", "tutoría", "tutoria"), respond: fixed(counselingResponse)},
		{name: "library", match: keywords("biblioteca", "libro", "libros", "préstamo", "prestamo", "catálogo", "catalogo"), respond: fixed(libraryResponse)},
		{name: "cafeteria", match: keywords("cafetería", "cafeteria", "comedor", "quiosco", "kiosco", "almuerzo"), respond: fixed(cafeteriaResponse)},
		{name: "parent_portal", match: anyOf(allOf(keywords("portal"), keywords("padre")), keywords("intranet")), respond: fixed(parentPortalResponse)},
		{name: "security", match: keywords("seguridad", "vigilancia", "portería", "porteria", "visita"), respond: fixed(securityResponse)},
		{name: "wbl_evidence", match: anyOf(keywords("evidencia", "aprendizaje en el trabajo"), allOf(keywords("horas"), keywords("práctica", "practica"))), respond: fixed(wblEvidenceResponse)},
		{name: "external_portals", match: keywords("siagie", "minedu", "ugel"), respond: fixed(externalPortalsResponse)},
		{name: "sports", match: keywords("deporte", "deportes", "fútbol", "futbol", "vóley", "voley", "básquet", "basquet", "educación física", "educacion fisica"), respond: fixed(sportsResponse)},
		{name: "tech_support", match: anyOf(keywords("soporte", "no funciona", "ticket"), allOf(keywords("servicio"), keywords("técnico", "tecnico"))), respond: fixed(techSupportResponse)},
		{name: "request_status", match: allOf(keywords("estado", "seguimiento", "avance"), keywords("solicitud", "trámite", "tramite", "pedido", "expediente")), respond: fixed(requestStatusResponse)},
		{name: "processing_time", match: keywords("cuánto demora", "cuanto demora", "cuánto tarda", "cuanto tarda", "cuánto tiempo", "cuanto tiempo", "plazo", "demora"), respond: fixed(processingTimeResponse)},
		{name: "help", match: keywords("ayuda", "ayúdame", "ayudame", "no sé qué hacer", "no se que hacer"), respond: fixed(helpResponse)},
		{name: "confusion", match: keywords("no entiendo", "no comprendo", "confundido", "confundida", "qué dices", "que dices", "no te entiendo"), respond: fixed(confusionResponse)},
		{name: "affirmative", match: exact("sí", "si", "claro", "ok", "okay", "vale", "de acuerdo", "perfecto", "ya"), respond: fixed(affirmativeResponse)},
		{name: "negative", match: exact("no", "nada", "ninguno", "ninguna", "aún no", "aun no", "todavía no", "todavia no"), respond: fixed(negativeResponse)},
		{name: "small_talk", match: keywords("cómo estás", "como estas", "qué tal", "que tal", "todo bien", "cómo te va", "como te va"), respond: e.fromPool(smallTalkPool)},
		{name: "weather", match: keywords("clima", "lluvia", "llueve", "hace frío", "hace frio", "hace calor", "pronóstico", "pronostico"), respond: fixed(weatherResponse)},
		{name: "finals", match: keywords("evaluaciones finales", "exámenes finales", "examenes finales", "examen final", "finales"), respond: fixed(finalsResponse)},
		{name: "assessments", match: keywords("evaluación", "evaluacion", "evaluaciones", "examen", "exámenes", "examenes", "bimestre", "bimestral"), respond: fixed(assessmentsResponse)},
		{name: "holidays", match: keywords("feriado", "feriados", "festivo", "festivos", "día no laborable", "dia no laborable"), respond: fixed(holidaysResponse)},
		{name: "recess", match: keywords("receso", "vacaciones", "descanso"), respond: fixed(recessResponse)},
		{name: "progress_reports", match: keywords("libreta", "libretas", "notas", "boleta", "calificaciones"), respond: fixed(progressReportsResponse)},
		{name: "education_week", match: keywords("educación inicial", "educacion inicial", "semana de la educación", "semana de la educacion"), respond: fixed(educationWeekResponse)},
		{name: "full_calendar", match: keywords("calendario", "fechas importantes", "cronograma", "año escolar"), respond: fixed(fullCalendarResponse)},
		{name: "events", match: keywords("evento", "eventos", "actividad", "actividades"), respond: fixed(eventsResponse)},
		{name: "fallback", match: func(string) bool { return true }, respond: fixed(fallbackResponse)},
	}
}

// keywords matches when any keyword appears as a substring of the input.
func keywords(keys ...string) func(string) bool {
	return func(in string) bool {
		for _, k := range keys {
			if strings.Contains(in, k) {
				return true
			}
		}
		return false
	}
}

// exact matches when the whole input equals one of the given forms. Used for
// one-word follow-ups where substring matching would misfire.
func exact(forms ...string) func(string) bool {
	return func(in string) bool {
		for _, f := range forms {
			if in == f {
				return true
			}
		}
		return false
	}
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(in string) bool {
		for _, p := range preds {
			if !p(in) {
				return false
			}
		}
		return true
	}
}

func anyOf(preds ...func(string) bool) func(string) bool {
	return func(in string) bool {
		for _, p := range preds {
			if p(in) {
				return true
			}
		}
		return false
	}
}

// matchDate fires on "<day> de <month>" with a real month name and a day in
// range. An unknown month name lets the input fall through to later rules.
func matchDate(in string) bool {
	m := dateRe.FindStringSubmatch(in)
	if m == nil {
		return false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return false
	}
	_, ok := monthNumber(m[2])
	return ok
}

// matchMonthQuery fires on a month name when the input is either short
// enough to be the month itself or clearly asks about events.
func matchMonthQuery(in string) bool {
	name, _, ok := findMonth(in)
	if !ok {
		return false
	}
	if utf8.RuneCountInString(in) <= 12 {
		return true
	}
	if keywords("qué", "que", "evento", "actividad", "cuándo", "cuando", "hay", "fecha")(in) {
		return true
	}
	return strings.Contains(in, "en "+name)
}

func findMonth(in string) (string, int, bool) {
	for _, m := range monthTable {
		if strings.Contains(in, m.name) {
			return m.name, m.num, true
		}
	}
	return "", 0, false
}

func dateResponse(in string) string {
	m := dateRe.FindStringSubmatch(in)
	day, _ := strconv.Atoi(m[1])
	month, _ := monthNumber(m[2])
	matches := eventsOn(day, month)
	if len(matches) == 0 {
		return noDateEventsResponse
	}
	return fmt.Sprintf("El %d de %s: %s.", day, monthName(month), strings.Join(matches, "; "))
}

func monthQueryResponse(in string) string {
	_, month, _ := findMonth(in)
	items := eventsIn(month)
	if len(items) == 0 {
		return noMonthEventsResponse
	}
	return fmt.Sprintf("Eventos de **%s**:\n• %s", monthName(month), strings.Join(items, "\n• "))
}

// fixed adapts a constant reply to the responder signature.
func fixed(text string) func(context.Context, string) (string, error) {
	return func(context.Context, string) (string, error) {
		return text, nil
	}
}

// plain adapts an input-derived reply to the responder signature.
func plain(fn func(in string) string) func(context.Context, string) (string, error) {
	return func(_ context.Context, in string) (string, error) {
		return fn(in), nil
	}
}
