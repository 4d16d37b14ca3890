package ingredient

// Static rule tables backing the matcher. They are populated once at package
// init and never mutated afterwards, so concurrent readers need no locking.

// neverMatch lists specialty ingredients that must only ever match themselves.
// A generic "flour" in a recipe must not consume someone's almond flour.
var neverMatch = []string{
	// Specialty flours
	"almond flour", "coconut flour", "cake flour", "bread flour", "self rising flour",
	"whole wheat flour", "gluten free flour", "gluten-free flour", "oat flour", "rice flour",

	// Specialty sugars and sweeteners
	"powdered sugar", "confectioners sugar", "coconut sugar", "maple sugar",
	"swerve", "stevia", "erythritol", "monk fruit", "xylitol", "sugar substitute",

	// Alternative milks
	"almond milk", "oat milk", "soy milk", "coconut milk", "rice milk", "cashew milk",

	// Compound dairy products
	"buttermilk", "sour cream", "heavy cream", "half and half", "cream cheese",

	// Vegan and diet-specific substitutes
	"vegan butter", "vegan cheese", "vegan milk", "vegan bacon", "vegan sausage",
	"vegan beef", "vegan chicken", "plant butter", "plant milk", "plant beef",

	// Extracts and seasonings
	"vanilla extract", "almond extract", "garlic powder", "onion powder",

	// Leaveners and baking specialties
	"baking powder", "baking soda", "cream of tartar", "xanthan gum",

	// Tomato product subtypes
	"tomato paste", "tomato sauce", "crushed tomatoes", "diced tomatoes", "tomato puree",
	"sun dried tomatoes", "cherry tomatoes", "roma tomatoes", "whole tomatoes",
}

// crossMatchRule blocks a pair of names that a substring or variation check
// would otherwise treat as equivalent.
type crossMatchRule struct {
	name    string
	blocked []string
}

var neverCrossMatch = []crossMatchRule{
	{"peanut butter", []string{"butter"}},
	{"almond butter", []string{"butter"}},
	{"green onions", []string{"onion", "onions"}},
	{"scallions", []string{"onion", "onions"}},
	{"red bell pepper", []string{"pepper"}},
	{"green bell pepper", []string{"pepper"}},
	{"red pepper diced", []string{"pepper"}},
	{"buttermilk", []string{"milk", "butter"}},
	{"heavy cream", []string{"milk"}},
	{"sour cream", []string{"cream", "milk"}},
	{"cream cheese", []string{"cheese", "cream"}},
	{"vegan bacon", []string{"bacon"}},
	{"sugar substitute", []string{"sugar"}},
	{"brown sugar", []string{"sugar"}},
	{"packed brown sugar", []string{"sugar"}},

	// Tomato products never stand in for fresh tomatoes or each other
	{"tomato paste", []string{"tomato", "tomatoes", "whole tomatoes", "fresh tomatoes"}},
	{"tomato sauce", []string{"tomato", "tomatoes", "whole tomatoes", "fresh tomatoes"}},
	{"crushed tomatoes", []string{"tomato", "tomatoes", "whole tomatoes", "fresh tomatoes"}},
	{"diced tomatoes", []string{"tomato", "tomatoes", "whole tomatoes", "fresh tomatoes"}},
	{"tomato puree", []string{"tomato", "tomatoes", "whole tomatoes", "fresh tomatoes"}},
	{"sun dried tomatoes", []string{"tomato", "tomatoes", "whole tomatoes", "fresh tomatoes"}},
	{"cherry tomatoes", []string{"tomato", "tomatoes", "whole tomatoes"}},
	{"roma tomatoes", []string{"tomato", "tomatoes", "whole tomatoes"}},
	{"whole tomatoes", []string{"tomato paste", "tomato sauce", "crushed tomatoes", "diced tomatoes"}},
	{"fresh tomatoes", []string{"tomato paste", "tomato sauce", "crushed tomatoes", "diced tomatoes"}},

	// Beef cuts
	{"cube steaks", []string{"ground beef", "steak", "roast"}},
	{"cubed steaks", []string{"ground beef", "steak", "roast"}},
	{"ground beef", []string{"cube steaks", "cubed steaks", "steak", "roast"}},
	{"ribeye steak", []string{"ground beef", "chuck roast", "round steak"}},
	{"strip steak", []string{"ground beef", "chuck roast", "round steak"}},
	{"sirloin steak", []string{"ground beef", "chuck roast"}},
	{"chuck roast", []string{"steak", "ground beef"}},
	{"brisket", []string{"steak", "ground beef", "roast"}},
	{"short ribs", []string{"steak", "ground beef"}},
	{"stew meat", []string{"steak", "roast"}},

	// Pork cuts
	{"pork shoulder", []string{"pork chops", "pork tenderloin", "ground pork", "bacon"}},
	{"boston butt", []string{"pork chops", "pork tenderloin", "ground pork", "bacon"}},
	{"pork chops", []string{"ground pork", "pork shoulder", "pork belly", "bacon"}},
	{"pork tenderloin", []string{"ground pork", "pork shoulder", "pork chops", "bacon"}},
	{"ground pork", []string{"pork chops", "pork tenderloin", "pork shoulder", "bacon"}},
	{"pork belly", []string{"pork chops", "pork tenderloin", "ground pork"}},
	{"bacon", []string{"pork chops", "pork tenderloin", "ground pork", "pork shoulder"}},
	{"italian sausage", []string{"ground pork", "pork chops", "pork tenderloin"}},
	{"baby back ribs", []string{"spare ribs", "pork chops", "ground pork"}},
	{"spare ribs", []string{"baby back ribs", "pork chops", "ground pork"}},

	// Poultry cuts
	{"chicken breast", []string{"ground chicken", "chicken thighs", "chicken wings", "chicken legs"}},
	{"chicken thighs", []string{"chicken breast", "ground chicken", "chicken wings"}},
	{"chicken legs", []string{"chicken breast", "chicken thighs", "ground chicken", "chicken wings"}},
	{"chicken wings", []string{"chicken breast", "chicken thighs", "chicken legs", "ground chicken"}},
	{"ground chicken", []string{"chicken breast", "chicken thighs", "chicken legs", "chicken wings"}},
	{"whole chicken", []string{"chicken breast", "chicken thighs", "ground chicken"}},
	{"turkey breast", []string{"ground turkey", "turkey thighs", "turkey legs"}},
	{"ground turkey", []string{"turkey breast", "turkey thighs", "turkey legs", "whole turkey"}},
	{"whole turkey", []string{"turkey breast", "ground turkey"}},

	// Cross-species prevention
	{"pork", []string{"chicken", "turkey", "beef", "duck"}},
	{"chicken", []string{"pork", "beef", "turkey", "duck"}},
	{"turkey", []string{"chicken", "pork", "beef", "duck"}},
	{"beef", []string{"pork", "chicken", "turkey", "duck"}},
	{"duck", []string{"chicken", "turkey", "pork", "beef"}},
}

// variationEntry maps a base ingredient to the surface forms considered
// interchangeable with it. Declaration order matters: reverse lookups stop at
// the first entry whose alias list contains the name.
type variationEntry struct {
	base    string
	aliases []string
}

var variations = []variationEntry{
	{"water", []string{"tap water", "filtered water", "cold water", "warm water", "hot water", "boiling water"}},
	{"hot water", []string{"water", "warm water", "boiling water"}},

	{"eggs", []string{
		"egg", "large eggs", "extra large eggs", "jumbo eggs", "medium eggs",
		"fresh eggs", "whole eggs", "brown eggs", "white eggs",
	}},
	{"egg", []string{"eggs", "large egg", "extra large egg", "fresh egg", "whole egg"}},

	{"flour", []string{
		"all purpose flour", "all-purpose flour", "plain flour", "white flour",
		"unbleached flour", "bleached flour", "enriched flour", "wheat flour",
		"ap flour", "general purpose flour",
	}},

	{"sugar", []string{
		"white sugar", "granulated sugar", "cane sugar", "pure cane sugar",
		"granulated white sugar", "table sugar", "regular sugar",
	}},

	{"milk", []string{
		"whole milk", "2% milk", "1% milk", "skim milk", "vitamin d milk",
		"reduced fat milk", "low fat milk", "fresh milk", "dairy milk",
	}},

	{"butter", []string{
		"unsalted butter", "salted butter", "sweet cream butter", "dairy butter",
		"real butter", "churned butter",
	}},

	{"garlic", []string{
		"garlic cloves", "garlic bulb", "minced garlic", "fresh garlic",
		"chopped garlic", "whole garlic", "garlic head",
	}},
	{"garlic cloves", []string{"garlic", "fresh garlic", "minced garlic"}},
	{"minced garlic", []string{"garlic", "garlic cloves"}},

	{"onion", []string{
		"onions", "yellow onion", "white onion", "sweet onion", "cooking onion",
		"spanish onion", "diced onion",
	}},
	{"onions", []string{"onion", "yellow onion", "white onion", "sweet onion"}},

	{"ground beef", []string{
		"beef", "hamburger", "ground chuck", "lean ground beef", "ground hamburger",
		"extra lean ground beef",
	}},
	{"hamburger", []string{"ground beef", "ground hamburger", "beef", "ground chuck"}},

	{"bread", []string{
		"sandwich bread", "wheat bread", "white bread", "sandwich wheat bread",
		"honey wheat bread", "texas toast", "sourdough bread", "sliced bread",
	}},

	// Fresh tomatoes interchange; processed products stay in their own groups
	{"tomatoes", []string{"fresh tomatoes", "whole tomatoes", "ripe tomatoes"}},
	{"fresh tomatoes", []string{"tomatoes", "whole tomatoes", "ripe tomatoes"}},
	{"whole tomatoes", []string{"fresh tomatoes", "tomatoes", "ripe tomatoes"}},
	{"cherry tomatoes", []string{"grape tomatoes", "small tomatoes"}},
	{"roma tomatoes", []string{"plum tomatoes", "paste tomatoes"}},
	{"tomato paste", []string{"concentrated tomato paste", "double concentrated tomato paste"}},
	{"tomato sauce", []string{"marinara sauce", "basic tomato sauce"}},
	{"crushed tomatoes", []string{"crushed canned tomatoes"}},
	{"diced tomatoes", []string{"diced canned tomatoes", "chopped tomatoes"}},

	// Beef cuts
	{"chuck roast", []string{"chuck pot roast", "chuck arm roast", "chuck blade roast", "shoulder roast", "chuck shoulder roast", "pot roast"}},
	{"chuck steak", []string{"chuck blade steak", "chuck arm steak", "shoulder steak", "chuck eye steak", "chuck steaks"}},
	{"chuck eye steak", []string{"chuck steak", "chuck eye", "mock tender steak"}},
	{"ground chuck", []string{"ground beef chuck", "chuck ground beef", "80/20 ground beef"}},
	{"prime rib", []string{"standing rib roast", "prime rib roast", "rib roast"}},
	{"rib eye steak", []string{"ribeye steak", "ribeye", "rib eye", "delmonico steak", "spencer steak"}},
	{"ribeye steak", []string{"rib eye steak", "ribeye", "rib eye", "delmonico steak"}},
	{"ribeye", []string{"rib eye steak", "ribeye steak", "rib eye"}},
	{"short ribs", []string{"beef short ribs", "braising ribs", "chuck short ribs", "plate ribs"}},

	// Mechanically tenderized cuts interchange freely with each other
	{"cube steaks", []string{"cubed steaks", "cube steak", "cubed steak", "minute steaks", "swiss steaks", "minute steak"}},
	{"cubed steaks", []string{"cube steaks", "cube steak", "cubed steak", "minute steaks", "swiss steaks"}},
	{"cube steak", []string{"cubed steak", "cube steaks", "cubed steaks", "minute steak", "swiss steak"}},
	{"cubed steak", []string{"cube steak", "cube steaks", "cubed steaks", "minute steak"}},
	{"minute steaks", []string{"cube steaks", "cubed steaks", "minute steak", "swiss steaks"}},
	{"minute steak", []string{"minute steaks", "cube steak", "cubed steak"}},
	{"swiss steaks", []string{"cube steaks", "cubed steaks", "swiss steak"}},
	{"swiss steak", []string{"swiss steaks", "cube steaks"}},

	{"ground round", []string{"ground beef", "lean ground beef", "85/15 ground beef"}},
	{"ground sirloin", []string{"ground beef", "extra lean ground beef", "90/10 ground beef"}},
	{"lean ground beef", []string{"ground beef", "ground round", "85/15 ground beef"}},
	{"extra lean ground beef", []string{"ground beef", "ground sirloin", "90/10 ground beef"}},

	{"stew meat", []string{"beef stew meat", "stewing beef", "stew beef", "beef for stew"}},
	{"beef stew meat", []string{"stew meat", "stewing beef", "chuck stew meat"}},
	{"stewing beef", []string{"stew meat", "beef stew meat", "stew beef"}},
	{"soup bones", []string{"beef soup bones", "marrow bones", "beef bones"}},

	// Pork cuts
	{"pork shoulder", []string{"boston butt", "pork butt", "shoulder roast", "boston shoulder", "pork shoulder roast", "pulled pork"}},
	{"boston butt", []string{"pork shoulder", "pork butt", "shoulder roast", "boston shoulder", "pulled pork"}},
	{"pork butt", []string{"boston butt", "pork shoulder", "shoulder roast", "pulled pork"}},
	{"pork loin", []string{"center cut loin", "loin roast", "pork loin roast", "whole pork loin"}},
	{"pork chops", []string{"center cut pork chops", "loin chops", "center cut chops", "pork loin chops"}},
	{"pork tenderloin", []string{"tenderloin", "pork filet", "pork tender", "whole tenderloin"}},
	{"baby back ribs", []string{"baby ribs", "back ribs", "loin ribs", "top loin ribs"}},
	{"spare ribs", []string{"spareribs", "side ribs", "pork spare ribs"}},
	{"country style ribs", []string{"country-style ribs", "country ribs", "blade end ribs"}},
	{"ground pork", []string{"pork mince", "minced pork", "ground pork meat"}},
	{"italian sausage", []string{"italian pork sausage", "sweet italian sausage", "hot italian sausage"}},
	{"pork sausage", []string{"fresh pork sausage", "breakfast sausage", "bulk sausage"}},

	// Poultry cuts
	{"whole chicken", []string{"whole fryer", "whole roaster", "whole broiler", "fryer chicken", "roaster chicken"}},
	{"fryer chicken", []string{"whole fryer", "young chicken", "broiler chicken"}},
	{"chicken breast", []string{"chicken breasts", "bone-in chicken breast", "skin-on chicken breast"}},
	{"boneless chicken breast", []string{"boneless chicken breasts", "boneless skinless chicken breast", "chicken breast boneless"}},
	{"boneless skinless chicken breast", []string{"boneless skinless chicken breasts", "boneless chicken breast", "skinless chicken breast"}},
	{"chicken tenderloins", []string{"chicken tenderloin", "chicken tenders", "chicken strips"}},
	{"chicken tenders", []string{"chicken tenderloins", "chicken tenderloin", "chicken strips"}},
	{"chicken thighs", []string{"chicken thigh", "bone-in chicken thighs", "skin-on chicken thighs"}},
	{"boneless chicken thighs", []string{"boneless chicken thigh", "boneless skinless chicken thighs", "chicken thighs boneless"}},
	{"chicken legs", []string{"chicken leg", "whole chicken legs", "chicken drumsticks"}},
	{"chicken drumsticks", []string{"chicken drumstick", "drumsticks", "chicken legs"}},
	{"chicken wings", []string{"chicken wing", "whole chicken wings", "party wings"}},
	{"ground chicken", []string{"chicken mince", "minced chicken", "ground chicken meat"}},
	{"ground turkey", []string{"turkey mince", "minced turkey", "ground turkey meat"}},
	{"lean ground turkey", []string{"ground turkey", "extra lean ground turkey"}},
	{"turkey breast", []string{"turkey breasts", "bone-in turkey breast", "whole turkey breast"}},
	{"boneless turkey breast", []string{"boneless turkey breasts", "turkey breast boneless", "boneless skinless turkey breast"}},
}

// Substitution describes acceptable stand-ins for an ingredient together with
// a conversion note for display. Substitutions are advisory: they inform
// "did you mean" style suggestions and never feed into CanMatch decisions.
type Substitution struct {
	CanSubstituteWith []string `json:"canSubstituteWith"`
	ConversionNote    string   `json:"conversionNote"`
}

type substitutionEntry struct {
	base string
	sub  Substitution
}

var substitutions = []substitutionEntry{
	{"garlic cloves", Substitution{
		CanSubstituteWith: []string{"minced garlic", "garlic", "chopped garlic", "garlic jar"},
		ConversionNote:    "1 clove ≈ 1 tsp minced garlic",
	}},
	{"garlic cloves minced", Substitution{
		CanSubstituteWith: []string{"minced garlic", "garlic", "garlic cloves"},
		ConversionNote:    "1 clove ≈ 1 tsp minced garlic",
	}},
	{"minced garlic", Substitution{
		CanSubstituteWith: []string{"garlic cloves", "garlic", "fresh garlic"},
		ConversionNote:    "1 tsp ≈ 1 clove fresh garlic",
	}},
	{"bread", Substitution{
		CanSubstituteWith: []string{
			"sandwich bread", "wheat bread", "white bread", "sandwich wheat bread",
			"honey wheat bread", "texas toast", "sourdough bread", "rye bread",
		},
		ConversionNote: "Any bread type works for generic bread",
	}},
	{"ground hamburger", Substitution{
		CanSubstituteWith: []string{"ground beef", "hamburger", "ground chuck", "lean ground beef"},
		ConversionNote:    "Ground hamburger is the same as ground beef",
	}},
	{"hamburger", Substitution{
		CanSubstituteWith: []string{"ground beef", "ground hamburger", "ground chuck"},
		ConversionNote:    "Hamburger meat is ground beef",
	}},
	{"cube steaks", Substitution{
		CanSubstituteWith: []string{"cubed steaks", "minute steaks", "swiss steaks", "tenderized steaks"},
		ConversionNote:    "All are mechanically tenderized steaks - same cooking method",
	}},
	{"ground beef", Substitution{
		CanSubstituteWith: []string{"ground chuck", "ground round", "ground sirloin", "lean ground beef"},
		ConversionNote:    "Ground chuck (80/20), round (85/15), sirloin (90/10) - adjust for fat content",
	}},
	{"chicken breast", Substitution{
		CanSubstituteWith: []string{"boneless chicken breast", "boneless skinless chicken breast", "chicken breast fillets"},
		ConversionNote:    "Boneless cuts cook faster - adjust cooking time",
	}},
	{"pork chops", Substitution{
		CanSubstituteWith: []string{"center cut pork chops", "loin chops", "rib chops", "boneless pork chops"},
		ConversionNote:    "Bone-in vs boneless affects cooking time",
	}},
	{"italian sausage", Substitution{
		CanSubstituteWith: []string{"sweet italian sausage", "hot italian sausage", "mild italian sausage"},
		ConversionNote:    "Adjust spice level - sweet/mild vs hot/spicy",
	}},
	{"all purpose flour", Substitution{
		CanSubstituteWith: []string{"plain flour", "white flour", "unbleached flour"},
		ConversionNote:    "Standard 1:1 substitution for basic flour",
	}},
	{"whole milk", Substitution{
		CanSubstituteWith: []string{"2% milk", "1% milk", "skim milk"},
		ConversionNote:    "Lower fat content may affect richness in baking",
	}},
	{"unsalted butter", Substitution{
		CanSubstituteWith: []string{"salted butter", "sweet cream butter"},
		ConversionNote:    "If using salted butter, reduce salt in recipe by 1/4 tsp per stick",
	}},
	{"vegetable oil", Substitution{
		CanSubstituteWith: []string{"canola oil", "sunflower oil", "corn oil", "safflower oil"},
		ConversionNote:    "Neutral flavor oils - 1:1 substitution",
	}},
	{"olive oil", Substitution{
		CanSubstituteWith: []string{"extra virgin olive oil", "light olive oil", "virgin olive oil"},
		ConversionNote:    "Extra virgin has stronger flavor - use less for subtle dishes",
	}},
}
