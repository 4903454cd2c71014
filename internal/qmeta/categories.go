package qmeta

// subcategoryToCategory maps the subcategory labels found in archived
// packets to their parent category. Subcategories missing from this table
// fall back to themselves; the table is a convenience, not a taxonomy
// validator.
var subcategoryToCategory = map[string]string{
	"American Literature":  "Literature",
	"British Literature":   "Literature",
	"Classical Literature": "Literature",
	"European Literature":  "Literature",
	"World Literature":     "Literature",
	"Other Literature":     "Literature",
	"Drama":                "Literature",
	"Poetry":               "Literature",
	"Long Fiction":         "Literature",
	"Short Fiction":        "Literature",
	"Misc Literature":      "Literature",
	"American History":     "History",
	"Ancient History":      "History",
	"British History":      "History",
	"European History":     "History",
	"World History":        "History",
	"Other History":        "History",
	"Biology":              "Science",
	"Chemistry":            "Science",
	"Physics":              "Science",
	"Math":                 "Science",
	"Astronomy":            "Science",
	"Computer Science":     "Science",
	"Earth Science":        "Science",
	"Engineering":          "Science",
	"Other Science":        "Science",
	"Painting":             "Fine Arts",
	"Sculpture":            "Fine Arts",
	"Classical Music":      "Fine Arts",
	"Opera":                "Fine Arts",
	"Jazz":                 "Fine Arts",
	"Architecture":         "Fine Arts",
	"Dance":                "Fine Arts",
	"Film":                 "Fine Arts",
	"Photography":          "Fine Arts",
	"Visual Fine Arts":     "Fine Arts",
	"Auditory Fine Arts":   "Fine Arts",
	"Other Fine Arts":      "Fine Arts",
	"Religion":             "Religion",
	"Mythology":            "Mythology",
	"Philosophy":           "Philosophy",
	"Economics":            "Social Science",
	"Psychology":           "Social Science",
	"Sociology":            "Social Science",
	"Anthropology":         "Social Science",
	"Linguistics":          "Social Science",
	"Political Science":    "Social Science",
	"Other Social Science": "Social Science",
	"Current Events":       "Current Events",
	"Geography":            "Geography",
	"Other Academic":       "Other Academic",
	"Sports":               "Trash",
	"Popular Culture":      "Trash",
	"Television":           "Trash",
	"Video Games":          "Trash",
	"Music":                "Trash",
	"Movies":               "Trash",
}
