package assistant

// Reply texts. Line breaks and **bold** marks are part of the contract: the
// web client renders them as-is, so they are never post-processed here.

const firstGreetingResponse = "¡Hola! Soy Martina, la asistente virtual de la I.E. San Martín de Porres.\n" +
	"Puedo ayudarte con información sobre **trámites**, **horarios**, **servicios** y el **calendario escolar**.\n" +
	"Prueba preguntando: **\"¿Qué eventos hay en marzo?\"**"

var greetingPool = []string{
	"¡Hola de nuevo! ¿En qué puedo ayudarte?",
	"¡Hola! ¿Qué información necesitas hoy?",
	"¡Buenas! Cuéntame, ¿en qué te ayudo?",
	"¡Hola otra vez! Estoy aquí para ayudarte.",
}

var farewellPool = []string{
	"¡Hasta luego! Gracias por visitar el portal de la I.E. San Martín de Porres.",
	"¡Nos vemos! Cualquier consulta, aquí estaré.",
	"¡Hasta pronto! Que tengas un buen día.",
}

var thanksPool = []string{
	"¡De nada! Para eso estoy.",
	"¡Con gusto! ¿Necesitas algo más?",
	"No hay de qué. Estoy para ayudarte.",
}

var smallTalkPool = []string{
	"¡Muy bien, gracias por preguntar! ¿Y tú, qué necesitas hoy?",
	"¡Todo excelente por aquí! ¿En qué te puedo ayudar?",
	"¡Muy bien! Lista para ayudarte.",
}

const navigationResponse = "Para moverte por el portal usa el menú superior: **Inicio**, **Nosotros**, **Trámites**, **Servicios** y **Contacto**.\n" +
	"Desde la sección **Trámites** puedes registrar solicitudes de documentos, matrícula y reservas de espacios."

const capabilitiesResponse = "Puedo ayudarte con:\n" +
	"• Información de **trámites** (documentos, matrícula, reservas)\n" +
	"• El **calendario escolar** (pregúntame por una fecha o por un mes)\n" +
	"• **Horarios de atención** y datos de contacto\n" +
	"• Servicios de **enfermería**, **psicología** y **biblioteca**"

const identityResponse = "Soy Martina, la asistente virtual de la I.E. San Martín de Porres. Respondo las consultas frecuentes sobre el colegio."

const locationResponse = "Nos encontramos en **Av. Los Próceres 1250**, distrito de San Martín de Porres, Lima.\n" +
	"Puedes llegar con las líneas que paran en el paradero Los Próceres."

const teacherEmailsResponse = "Los correos institucionales de los docentes siguen el formato **inicial.apellido@iesanmartin.edu.pe**.\n" +
	"El directorio completo está en la sección **Nosotros > Plana docente**."

const contactResponse = "Puedes comunicarte con nosotros:\n" +
	"• Teléfono: **(01) 533-4821**\n" +
	"• Correo: **informes@iesanmartin.edu.pe**\n" +
	"• Mesa de partes: lunes a viernes de 8:00 a 14:00"

const hoursResponse = "Nuestro horario de atención:\n" +
	"• **Oficinas administrativas**: lunes a viernes de 8:00 a 15:30\n" +
	"• **Mesa de partes**: lunes a viernes de 8:00 a 14:00\n" +
	"• **Clases**: de 7:45 a 15:15"

const nurseResponse = "La **enfermería** atiende de lunes a viernes de 7:30 a 15:30, junto al patio principal.\n" +
	"Cada atención queda registrada y se informa a los padres cuando corresponde."

const counselingResponse = "El departamento de **psicología** atiende con cita previa.\n" +
	"Puedes pedir una cita desde **Servicios > Psicología** o acercándote a la oficina del segundo piso."

const libraryResponse = "La **biblioteca** está abierta de lunes a viernes de 8:00 a 15:00.\n" +
	"El catálogo se consulta en **Servicios > Biblioteca**; los préstamos son por 7 días."

const cafeteriaResponse = "La **cafetería escolar** atiende en ambos recreos y el almuerzo de 12:30 a 13:15.\n" +
	"El menú semanal se publica cada lunes en el mural y en la sección **Servicios**."

const parentPortalResponse = "El **portal de padres** permite revisar notas, asistencia y comunicados.\n" +
	"Ingresa desde **Servicios > Portal de padres** con el usuario entregado en la matrícula. Si no lo tienes, solicítalo en secretaría."

const securityResponse = "El área de **seguridad** controla el ingreso y la salida: toda visita se registra en portería con su DNI.\n" +
	"Para reportar un incidente usa **Servicios > Seguridad** o acércate a la oficina junto a la puerta principal."

const wblEvidenceResponse = "Las **evidencias de aprendizaje en el trabajo** se registran por programa:\n" +
	"ingresa a **Servicios > Formación técnica**, elige tu programa y registra las horas con su descripción y el enlace de la evidencia."

const externalPortalsResponse = "Enlaces oficiales:\n" +
	"• **SIAGIE**: siagie.minedu.gob.pe\n" +
	"• **MINEDU**: www.gob.pe/minedu\n" +
	"• **UGEL 02**: www.ugel02.gob.pe"

const sportsResponse = "Los **talleres deportivos** (fútbol, vóley y básquet) se dictan martes y jueves de 15:30 a 17:00.\n" +
	"Las inscripciones se hacen en la oficina de educación física."

const techSupportResponse = "Si tienes problemas con la plataforma puedes abrir un **ticket de soporte** en **Servicios > Soporte técnico**.\n" +
	"El equipo responde en un plazo máximo de 2 días hábiles."

const requestStatusResponse = "Para consultar el estado de tu solicitud necesitas el **código** que recibiste al registrarla (por ejemplo **DOC-250314-042**).\n" +
	"Ingrésalo en la sección **Trámites > Seguimiento**."

const processingTimeResponse = "Los tiempos de atención referenciales son:\n" +
	"• Constancias y certificados: **3 a 5 días hábiles**\n" +
	"• Solicitudes de matrícula: **5 a 7 días hábiles**\n" +
	"• Reservas de espacios: **2 días hábiles**"

const helpResponse = "Con gusto te ayudo. Puedes preguntarme, por ejemplo:\n" +
	"• **\"¿Qué eventos hay en marzo?\"**\n" +
	"• **\"¿Cuál es el horario de atención?\"**\n" +
	"• **\"¿Cómo solicito un certificado?\"**"

const confusionResponse = "Disculpa si no fui clara. Intenta preguntarme de otra forma, por ejemplo: **\"horario de atención\"** o **\"eventos de mayo\"**."

const affirmativeResponse = "¡Perfecto! ¿Hay algo más en lo que pueda ayudarte?"

const negativeResponse = "De acuerdo. Si necesitas algo más, aquí estaré."

const weatherResponse = "No tengo datos del clima, te recomiendo revisar el pronóstico del Senamhi.\n" +
	"Recuerda que en temporada de frío los alumnos pueden asistir con el buzo institucional."

const finalsResponse = "Las **evaluaciones finales** se rinden del 1 al 12 de diciembre.\n" +
	"El cronograma detallado por grado se publica la última semana de noviembre."

const assessmentsResponse = "Calendario de **evaluaciones bimestrales**:\n" +
	"• Primer bimestre: del 13 al 30 de abril\n" +
	"• Evaluaciones finales: del 1 al 12 de diciembre\n" +
	"Las fechas por curso las publica cada docente en el aula virtual."

const holidaysResponse = "Días festivos del año escolar:\n" +
	"• 16 de febrero: Carnavales\n" +
	"• 1 de mayo: Día del Trabajo\n" +
	"• 29 de junio: San Pedro y San Pablo\n" +
	"• 28 y 29 de julio: Fiestas Patrias\n" +
	"• 30 de agosto: Santa Rosa de Lima\n" +
	"• 8 de octubre: Combate de Angamos\n" +
	"• 1 de noviembre: Todos los Santos\n" +
	"• 8 de diciembre: Inmaculada Concepción"

const recessResponse = "Periodos de descanso:\n" +
	"• **Vacaciones de medio año**: del 21 de julio al 1 de agosto\n" +
	"• **Receso del tercer bimestre**: del 13 al 17 de octubre\n" +
	"Las clases se retoman al día siguiente de cada receso."

const progressReportsResponse = "Entrega de **libretas de notas**:\n" +
	"• Primer bimestre: 30 de mayo\n" +
	"• Segundo bimestre: 18 de julio\n" +
	"• Tercer bimestre: 24 de octubre\n" +
	"La entrega final se realiza en la clausura del 19 de diciembre."

const educationWeekResponse = "La **Semana de la Educación Inicial** se celebra del 25 al 29 de mayo con actividades abiertas a las familias del nivel inicial."

const fullCalendarResponse = "Fechas clave del año escolar:\n" +
	"• **3 de marzo**: inicio de clases\n" +
	"• **13 al 30 de abril**: evaluaciones del primer bimestre\n" +
	"• **21 de julio al 1 de agosto**: vacaciones de medio año\n" +
	"• **1 al 12 de diciembre**: evaluaciones finales\n" +
	"• **19 de diciembre**: clausura del año escolar\n" +
	"Pregúntame por un mes o por una fecha específica para ver el detalle."

const eventsResponse = "Tenemos actividades durante todo el año escolar.\n" +
	"Pregúntame por un mes (por ejemplo **\"eventos en marzo\"**) o por una fecha (por ejemplo **\"20 de abril\"**) y te cuento qué hay programado."

const noDateEventsResponse = "No hay eventos programados para esa fecha.\n" +
	"Puedes preguntarme por otro día o por un mes completo."

const noMonthEventsResponse = "No tengo eventos registrados para ese mes.\n" +
	"Pregúntame por otro mes o por el **calendario escolar** completo."

const fallbackResponse = "Lo siento, todavía no puedo responder esa consulta.\n" +
	"Prueba preguntarme por el **calendario escolar**, los **horarios de atención** o los **trámites** del colegio."
