package service

import "uatf-curricular/backend/internal/model"

// Reference catalog of the university, loaded by the seed command.

var seedCampuses = []string{
	"Potosí",
	"Tupiza",
	"Villazón",
	"Uyuni",
	"Uncía",
	"Llica",
	"San Cristóbal",
	"Río Grande",
}

const (
	facArts        = "Facultad de Artes"
	facAgriculture = "Facultad de Ciencias Agrícolas y Pecuarias"
	facEconomics   = "Facultad de Ciencias Económicas, Financieras y Administrativas"
	facSciences    = "Facultad de Ciencias Puras"
	facSocial      = "Facultad de Ciencias Sociales y Humanísticas"
	facLaw         = "Facultad de Derecho"
	facEngineering = "Facultad de Ingeniería"
	facGeology     = "Facultad de Ingeniería Geológica"
	facMining      = "Facultad de Ingeniería Minera"
	facTechnology  = "Facultad de Ingeniería Tecnológica"
	facHealth      = "Facultad de Ciencias de la Salud"
	facMedicine    = "Facultad de Medicina"
	facViceRector  = "Vicerrectorado"
)

var seedFaculties = []string{
	facArts, facAgriculture, facEconomics, facSciences, facSocial, facLaw, facEngineering,
	facGeology, facMining, facTechnology, facHealth, facMedicine, facViceRector,
}

var seedPhases = []model.Phase{
	{Number: 1, Name: "Organización en Comisión de Rediseño Curricular", Code: "RC", SortOrder: 1},
	{Number: 2, Name: "Recolección de Documentos y Proyecto Curricular", Code: "PC", SortOrder: 2},
	{Number: 3, Name: "Diagnóstico Inicial de la Carrera", Code: "DI", SortOrder: 3},
	{Number: 4, Name: "Estudio de Contexto", Code: "EC", SortOrder: 4},
	{Number: 5, Name: "Mesa Multisectorial", Code: "MM", SortOrder: 5},
	{Number: 6, Name: "Elaboración de la Propuesta Macro Curricular", Code: "MC", SortOrder: 6},
	{Number: 7, Name: "Reunión Académica de Carrera", Code: "RAC", SortOrder: 7},
	{Number: 8, Name: "Validación Técnica", Code: "VT", SortOrder: 8},
	{Number: 9, Name: "Validación Normativa", Code: "VN", SortOrder: 9},
	{Number: 10, Name: "Comisión Académica", Code: model.PhaseCodeAcademicCommission, SortOrder: 10},
	{Number: 11, Name: "Honorable Consejo Universitario", Code: "HCU", SortOrder: 11},
	{Number: 12, Name: "Reunión Académica Nacional", Code: "RAN", SortOrder: 12},
}

type seedProgram struct {
	Faculty string
	Name    string
	Degree  string
}

const (
	lic = model.DegreeLicentiate
	ts  = model.DegreeHigherTechnician
	tm  = model.DegreeMidTechnician
)

// seedPrograms programs per campus name
var seedPrograms = map[string][]seedProgram{
	"Potosí": {
		{facArts, "Artes Musicales", lic},
		{facArts, "Artes Plásticas", lic},
		{facArts, "Arquitectura", lic},

		{facAgriculture, "Ingeniería Agronómica", lic},
		{facAgriculture, "Ingeniería Agroindustrial", lic},
		{facAgriculture, "Ingeniería en Desarrollo Rural", lic},

		{facEconomics, "Auditoría - Contaduría Pública", lic},
		{facEconomics, "Contabilidad y Finanzas", lic},
		{facEconomics, "Administración de Empresas", lic},
		{facEconomics, "Economía", lic},
		{facEconomics, "Ingeniería Comercial", lic},

		{facSciences, "Química", lic},
		{facSciences, "Estadística", lic},
		{facSciences, "Física", lic},
		{facSciences, "Matemática", lic},
		{facSciences, "Ingeniería Informática", lic},

		{facSocial, "Turismo", lic},
		{facSocial, "Lingüística e Idiomas", lic},
		{facSocial, "Trabajo Social", lic},
		{facSocial, "Programa de Ciencias de la Comunicación", lic},
		{facSocial, "Programa de Pedagogía Intercultural", lic},

		{facLaw, "Derecho", lic},

		{facEngineering, "Ingeniería Civil", lic},
		{facEngineering, "Construcciones Civiles", ts},
		{facEngineering, "Ingeniería en Geodesia y Topografía", lic},

		{facGeology, "Ingeniería Geológica", lic},
		{facGeology, "Ingeniería del Medio Ambiente", lic},

		{facMining, "Ingeniería Minera", lic},
		{facMining, "Ingeniería de Procesos de Materias Primas Minerales", lic},

		{facTechnology, "Ingeniería Eléctrica", lic},
		{facTechnology, "Ingeniería Electrónica", lic},
		{facTechnology, "Ingeniería Mecánica", lic},
		{facTechnology, "Ingeniería Mecatrónica", lic},
		{facTechnology, "Mecánica Automotriz", lic},
		{facTechnology, "Técnico Univ. Medio en Electricidad", tm},
		{facTechnology, "Técnico Univ. Medio en Electrónica", tm},
		{facTechnology, "Técnico Univ. Medio en Mecánica", tm},
		{facTechnology, "Técnico Univ. Medio en Mecatrónica", tm},
		{facTechnology, "Técnico Univ. Medio en Mecánica Automotriz", tm},

		{facHealth, "Enfermería", lic},
		{facHealth, "Técnico Univ. Medio Auxiliar de Enfermería", tm},

		{facMedicine, "Medicina", lic},

		{facViceRector, "Programa Enfermeria", lic},
		{facViceRector, "Programa Derecho", lic},
		{facViceRector, "Programa Ciencias de la Comunicación", lic},
		{facViceRector, "Odontologia", lic},
		{facViceRector, "Ingeniería de Sistemas", lic},
		{facViceRector, "Programa Diseño y Programacion Digital", lic},
	},
	"Tupiza": {
		{facAgriculture, "Medicina Veterinaria y Zootecnia", lic},
		{facEconomics, "Contaduría Pública", lic},
		{facViceRector, "Programa Derecho", lic},
		{facViceRector, "Ingeniería de Sistemas", lic},
		{facSocial, "Escuela de Idiomas", lic},
	},
	"Villazón": {
		{facAgriculture, "Ingeniería Agropecuaria", lic},
		{facHealth, "Enfermería", lic},
	},
	"Uyuni": {
		{facEconomics, "Economía", lic},
		{facSocial, "Turismo", lic},
		{facSocial, "Lingüística e Idiomas", lic},
	},
	"Uncía": {
		{facEconomics, "Economía", lic},
		{facLaw, "Derecho", lic},
		{facSocial, "Trabajo Social", lic},
		{facSocial, "Lingüística e Idiomas", lic},
	},
	"Llica": {
		{facViceRector, "Programa Enfermeria", lic},
	},
	"San Cristóbal": {
		{facHealth, "Técnico Univ. Medio Auxiliar de Enfermería", tm},
		{facTechnology, "Ingeniería Eléctrica", lic},
		{facTechnology, "Ingeniería Mecánica", lic},
		{facTechnology, "Ingeniería Mecatrónica", lic},
		{facTechnology, "Ingeniería Automotriz", lic},
	},
	"Río Grande": {
		{facEconomics, "Administración de Empresas", lic},
	},
}
