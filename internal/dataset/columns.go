package dataset

// ColumnNames lists the 20 source columns in file order.
var ColumnNames = []string{
	"id",       // Patient ID
	"futime",   // Follow-up time in days (survival time)
	"status",   // 0=alive, 1=transplant, 2=dead
	"drug",     // 1=D-penicillamine, 2=placebo
	"age",      // Age in days
	"sex",      // 0=male, 1=female
	"ascites",  // 0=no, 1=yes
	"hepato",   // Hepatomegaly: 0=no, 1=yes
	"spiders",  // Spider angiomata: 0=no, 1=yes
	"edema",    // 0=none, 0.5=moderate, 1=severe
	"bili",     // Bilirubin mg/dl
	"chol",     // Cholesterol mg/dl
	"albumin",  // Albumin gm/dl
	"copper",   // Urine copper ug/day
	"alk_phos", // Alkaline phosphatase U/liter
	"sgot",     // SGOT U/ml
	"trig",     // Triglycerides mg/dl
	"platelet", // Platelets per cubic ml/1000
	"protime",  // Prothrombin time seconds
	"stage",    // Disease stage 1-4
}

// DerivedColumnNames lists the columns appended to the ML-ready output,
// in output order.
var DerivedColumnNames = []string{
	"age_years",
	"death_event",
	"male",
	"female",
	"drug_treatment",
}

// CategoricalColumns lists the columns coerced to nullable integers when an
// ML-ready CSV is loaded back for analysis.
var CategoricalColumns = []string{
	"drug", "sex", "ascites", "hepato", "spiders", "stage",
	"death_event", "male", "female", "drug_treatment",
}

// SurvivalFeatureColumns is the fixed feature list for the survival feature
// matrix. Outcome columns (futime, death_event) and the patient identifier
// are deliberately excluded.
var SurvivalFeatureColumns = []string{
	"age_years", "male", "ascites", "hepato", "spiders", "edema",
	"bili", "chol", "albumin", "copper", "alk_phos", "sgot",
	"trig", "platelet", "protime", "stage", "drug_treatment",
}

// MLColumnNames returns the full ML-ready header: the 20 source columns
// followed by the derived columns.
func MLColumnNames() []string {
	names := make([]string, 0, len(ColumnNames)+len(DerivedColumnNames))
	names = append(names, ColumnNames...)
	names = append(names, DerivedColumnNames...)
	return names
}

// FeatureDescriptions returns human-readable descriptions of the columns
// relevant to modeling. Display and documentation only.
func FeatureDescriptions() map[string]string {
	return map[string]string{
		"futime":         "Follow-up time in days (survival outcome)",
		"death_event":    "Death indicator (1=died, 0=alive/transplant)",
		"age_years":      "Patient age in years",
		"male":           "Male gender (1=male, 0=female)",
		"ascites":        "Ascites present (fluid in abdomen)",
		"hepato":         "Hepatomegaly present (enlarged liver)",
		"spiders":        "Spider angiomata present (vascular lesions)",
		"edema":          "Edema severity (0=none, 0.5=moderate, 1=severe)",
		"bili":           "Serum bilirubin mg/dl (liver function)",
		"chol":           "Serum cholesterol mg/dl",
		"albumin":        "Serum albumin gm/dl (liver synthetic function)",
		"copper":         "24-hour urine copper ug/day",
		"alk_phos":       "Alkaline phosphatase U/liter (bile duct function)",
		"sgot":           "SGOT/AST U/ml (liver enzyme)",
		"trig":           "Triglycerides mg/dl",
		"platelet":       "Platelet count per cubic ml/1000",
		"protime":        "Prothrombin time seconds (clotting function)",
		"stage":          "Histologic disease stage (1-4)",
		"drug_treatment": "D-penicillamine treatment (1=yes, 0=placebo)",
	}
}
