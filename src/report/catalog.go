package report

// Choice values shared across the report forms.
const (
	ChoiceYes     = "Oui"
	ChoiceNo      = "Non"
	ChoiceUnknown = "Inconnu"

	// SentinelNone marks "this component does not exist" on type fields.
	// The reducer zeroes the section score and clears dependent fields
	// when a parent field takes this value.
	SentinelNone = "Aucun"
)

// ChoiceTriad is the standard yes/no/unknown answer set.
var ChoiceTriad = []string{ChoiceYes, ChoiceNo, ChoiceUnknown}

// Option lists for the inspection forms. These are pure data: the admin UI
// renders them as dropdowns and the schema builder accepts any value for
// choice fields as long as it is non-empty.
var (
	CaseMaterials = []string{
		"Acier", "Or jaune", "Or rose", "Or blanc", "Platine",
		"Titane", "Céramique", "Bronze", "Carbone", "Acier/Or",
	}

	CaseShapes = []string{
		"Ronde", "Carrée", "Rectangulaire", "Tonneau", "Coussin", "Ovale",
	}

	CaseFinishes = []string{
		"Poli", "Brossé", "Poli/Brossé", "Satiné", "Microbillé",
	}

	Hallmarks = []string{
		"Poinçon de Maître", "Tête d'aigle", "Hibou", "Saint-Bernard",
		"Helvetia", "750", "18K", SentinelNone,
	}

	Gemstones = []string{
		"Diamant", "Saphir", "Rubis", "Émeraude", "Autre",
	}

	GemSettingTypes = []string{
		"Serti griffes", "Serti clos", "Serti rail", "Serti neige", "Serti pavé",
	}

	CaseBackTypes = []string{
		"Plein", "Squelette", "Fond vissé", "Fond clipsé", "Officier",
	}

	BezelTypes = []string{
		"Lisse", "Cannelée", "Tournante unidirectionnelle",
		"Tournante bidirectionnelle", "Tachymètre", SentinelNone,
	}

	BezelInsertMaterials = []string{
		"Aluminium", "Céramique", "Bakélite", "Acier", "Saphir",
	}

	CrownTypes = []string{
		"Vissée", "Poussoir", "À pompe",
	}

	GlassMaterials = []string{
		"Saphir", "Minéral", "Plexiglas",
	}

	GlassShapes = []string{
		"Plat", "Bombé", "Glassbox", "Loupe",
	}

	DialColors = []string{
		"Noir", "Blanc", "Argenté", "Bleu", "Vert", "Gris",
		"Champagne", "Doré", "Bordeaux", "Saumon",
	}

	DialMaterials = []string{
		"Laiton", "Émail", "Nacre", "Météorite", "Carbone", "Pierre dure",
	}

	DialFinishes = []string{
		"Soleillé", "Mat", "Guilloché", "Laqué", "Grené",
	}

	IndexTypes = []string{
		"Bâtons", "Chiffres romains", "Chiffres arabes", "Diamants", "Mixte",
	}

	Luminescences = []string{
		"Radium", "Tritium", "Luminova", "Super-LumiNova", "Aucune",
	}

	HandTypes = []string{
		"Dauphine", "Bâton", "Mercedes", "Squelette", "Breguet", "Glaive",
	}

	BraceletTypes = []string{
		"Oyster", "Jubilee", "President", "Milanais", "Cuir",
		"Caoutchouc", "NATO", SentinelNone,
	}

	ClaspTypes = []string{
		"Déployante", "Boucle ardillon", "Papillon", "Plongée",
	}

	MovementTypes = []string{
		"Automatique", "Manuel", "Quartz",
	}

	WindingTypes = []string{
		"Rotor central", "Micro-rotor", "Remontage manuel",
	}

	TestResults = []string{
		"Conforme", "Non conforme",
	}

	Currencies = []string{
		"EUR", "USD", "CHF", "GBP",
	}
)
