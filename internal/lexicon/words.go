package lexicon

// Vocabulary tables consulted by the classifier. Centralizing the word
// lists here keeps the rule set auditable and tunable in one place
// instead of scattering literals across the cascade predicates.

// Food vocabulary, by category.
var (
	proteinWords = []string{
		"chicken", "beef", "pork", "lamb", "turkey", "duck", "veal",
		"fish", "salmon", "tuna", "cod", "tilapia", "halibut", "trout",
		"shrimp", "crab", "lobster", "scallops", "clams", "mussels",
		"tofu", "tempeh", "bacon", "sausage", "ham", "steak", "brisket",
		"ribs", "meatballs", "ground beef", "ground turkey", "egg", "eggs",
	}

	vegetableWords = []string{
		"onion", "onions", "garlic", "carrot", "carrots", "celery",
		"potato", "potatoes", "sweet potato", "tomato", "tomatoes",
		"pepper", "peppers", "bell pepper", "jalapeno", "broccoli",
		"spinach", "lettuce", "cucumber", "zucchini", "mushroom",
		"mushrooms", "corn", "peas", "cabbage", "cauliflower", "kale",
		"squash", "pumpkin", "greens", "avocado", "beet", "beets",
		"radish", "asparagus", "eggplant", "leek", "leeks", "scallions",
		"shallot", "shallots", "green beans",
	}

	fruitWords = []string{
		"apple", "apples", "banana", "bananas", "strawberry",
		"strawberries", "blueberry", "blueberries", "raspberry",
		"raspberries", "cranberry", "cranberries", "cherry", "cherries",
		"peach", "peaches", "pear", "pears", "plum", "plums", "mango",
		"pineapple", "orange", "oranges", "lemon", "lemons", "lime",
		"limes", "grape", "grapes", "raisins", "melon", "watermelon",
		"apricot", "apricots", "fig", "figs", "dates", "rhubarb",
		"berries", "zest",
	}

	grainWords = []string{
		"rice", "pasta", "noodles", "bread", "flour", "oats", "oatmeal",
		"quinoa", "barley", "couscous", "tortilla", "tortillas",
		"spaghetti", "macaroni", "penne", "linguine", "orzo", "grits",
		"cornmeal", "breadcrumbs", "crackers", "pita",
	}

	dairyWords = []string{
		"milk", "butter", "cheese", "cream", "yogurt", "cheddar",
		"mozzarella", "parmesan", "feta", "ricotta", "buttermilk",
		"sour cream", "cream cheese", "heavy cream", "half and half",
	}

	herbSpiceWords = []string{
		"basil", "oregano", "thyme", "rosemary", "cilantro", "parsley",
		"mint", "dill", "sage", "chives", "cumin", "paprika", "cinnamon",
		"nutmeg", "ginger", "turmeric", "cayenne", "chili powder",
		"curry powder", "vanilla", "salt", "peppercorns", "bay leaf",
		"red pepper flakes", "garlic powder", "onion powder",
	}

	pantryWords = []string{
		"oil", "olive oil", "vegetable oil", "canola oil", "sesame oil",
		"vinegar", "sugar", "brown sugar", "honey", "soy sauce", "broth",
		"stock", "ketchup", "mustard", "mayonnaise", "baking powder",
		"baking soda", "yeast", "cornstarch", "maple syrup", "molasses",
		"worcestershire", "hot sauce", "fish sauce", "tomato paste",
		"tomato sauce", "coconut milk",
	}

	dessertWords = []string{
		"chocolate", "cocoa", "caramel", "frosting", "icing",
		"sprinkles", "marshmallow", "marshmallows", "pudding", "fudge",
		"toffee", "chocolate chips", "powdered sugar", "whipped cream",
		"graham crackers",
	}

	nutLegumeWords = []string{
		"almonds", "almond", "walnuts", "pecans", "peanuts", "cashews",
		"pistachios", "pine nuts", "peanut butter", "beans",
		"black beans", "kidney beans", "pinto beans", "lentils",
		"chickpeas", "hummus",
	}

	preparedWords = []string{
		"salsa", "pesto", "guacamole", "gravy", "dough", "batter",
		"tortilla chips", "croutons", "relish",
	}

	dishNameWords = []string{
		"pizza", "burger", "burgers", "taco", "tacos", "chili",
		"risotto", "lasagna", "curry", "stir fry", "pancakes", "waffles",
		"muffins", "cookies", "cake", "pie", "soup", "salad", "stew",
		"sandwich", "sandwiches", "casserole", "omelet", "enchiladas",
		"quesadillas", "burrito", "burritos", "meatloaf", "pot pie",
		"mac and cheese", "fried rice", "brownies", "cupcakes",
	}
)

// Cooking-method verbs at three sophistication tiers.
var (
	basicCookingWords = []string{
		"bake", "boil", "mix", "stir", "heat", "cook", "chop", "slice",
		"add", "pour", "serve", "grill", "fry", "cut", "spread", "top",
		"cool", "cover", "place",
	}

	intermediateCookingWords = []string{
		"saute", "simmer", "roast", "whisk", "marinate", "season",
		"dice", "mince", "knead", "drain", "preheat", "blend", "toss",
		"melt", "grate", "shred", "mash", "broil", "steam", "brown",
		"garnish", "drizzle", "sprinkle",
	}

	advancedCookingWords = []string{
		"braise", "caramelize", "deglaze", "emulsify", "julienne",
		"poach", "reduce", "temper", "blanch", "sear", "render",
		"proof", "fold", "flambe", "sous vide",
	}
)

// Title-structure vocabulary. These drive the dish-completion gate in the
// title predicate: a title must read like a finished dish, not a sentence
// fragment that happens to mention food.
var (
	descriptorWords = []string{
		"crispy", "creamy", "spicy", "sweet", "savory", "tangy", "zesty",
		"smoky", "hearty", "classic", "easy", "quick", "homemade",
		"ultimate", "perfect", "crunchy", "fluffy", "chewy", "moist",
		"rich", "golden", "loaded", "cheesy", "garlicky", "sticky",
	}

	dishTypeWords = []string{
		"soup", "salad", "stew", "casserole", "pie", "cake", "cookies",
		"bread", "muffins", "pancakes", "waffles", "bars", "bites",
		"wraps", "sliders", "dip", "spread",
		"roast", "bake", "chowder", "bisque", "frittata", "hash",
		"kebabs", "skewers", "tart", "galette", "crumble", "cobbler",
	}

	preparationWords = []string{
		"grilled", "roasted", "fried", "refried", "baked", "smoked",
		"glazed", "stuffed", "whipped", "braised", "toasted",
		"caramelized", "marinated", "shredded", "mashed", "scrambled",
		"poached", "seared", "slow cooker", "pan seared", "oven fried",
		"blackened", "candied", "pickled",
	}

	regionalStyleWords = []string{
		"italian", "mexican", "french", "thai", "chinese", "indian",
		"greek", "mediterranean", "cajun", "southern", "korean",
		"japanese", "spanish", "moroccan", "tex mex", "tuscan",
		"sicilian", "vietnamese", "cuban", "hawaiian", "creole",
	}

	dishComponentWords = []string{
		"topping", "sauce", "dressing", "filling", "glaze", "crust",
		"marinade", "rub", "compote", "chutney", "aioli", "vinaigrette",
		"drizzle", "crumb",
	}
)

// fragmentIndicatorWords mark text as a mid-instruction fragment rather
// than a title: transition verbs and container/equipment nouns that recipe
// steps reference constantly but dish names never do.
var fragmentIndicatorWords = []string{
	"transfer", "combine", "continue", "until", "meanwhile",
	"remaining", "mixture", "bowl", "skillet", "saucepan", "pot",
	"plate", "rack", "spatula", "tongs", "aside", "discard", "repeat",
	"remove", "return", "adjust", "divided", "reserved", "add", "serve",
}

// iconicDishWords are the only single words accepted as complete recipe
// titles. Kept deliberately short; generic words like "soup" stay out.
var iconicDishWords = []string{
	"chili", "risotto", "paella", "gumbo", "jambalaya", "lasagna",
	"ratatouille", "tiramisu", "hummus", "guacamole", "granola",
	"meatloaf", "coleslaw", "cornbread", "biscotti", "brownies",
	"minestrone", "falafel", "shakshuka", "gazpacho",
}

// sectionLabelPhrases are section headers that cookbooks print between a
// recipe's parts; matched exact-ish (after normalization), never as content.
var sectionLabelPhrases = []string{
	"start cooking", "before you begin", "method", "directions",
	"instructions", "ingredients", "prepare ingredients",
	"getting started", "gather your equipment", "you will need",
	"to finish", "to serve",
}

// frontMatterPhrases identify book apparatus rather than recipes.
var frontMatterPhrases = []string{
	"table of contents", "contents", "index", "acknowledgments",
	"acknowledgements", "introduction", "copyright", "dedication",
	"about the author", "about this book", "conversions and equivalents",
	"recipe list", "welcome",
}

// educationalPhrases flag the narrative asides test-kitchen cookbooks
// wrap around recipes.
var educationalPhrases = []string{
	"why this recipe works", "the science of", "food science",
	"science experiment", "kitchen skills", "did you know",
	"taste test", "core technique", "food for thought",
	"try it this way", "behind the recipe",
}

// artifactPhrases are bare header words that show up as orphaned spans
// when a page's visual layout is flattened to text.
var artifactPhrases = []string{
	"keep going", "start", "finish", "recipe", "photos", "notes",
	"continued", "cont",
}

// shortWordAllowlist lists legitimate 1-2 letter lowercase tokens, so the
// broken-word detector only fires on OCR splits like "br ead".
var shortWordAllowlist = map[string]struct{}{
	"a": {}, "an": {}, "as": {}, "at": {}, "au": {}, "be": {},
	"by": {}, "de": {}, "du": {}, "el": {}, "go": {}, "if": {},
	"in": {}, "is": {}, "it": {}, "la": {}, "le": {}, "my": {},
	"no": {}, "of": {}, "on": {}, "or": {}, "so": {}, "to": {},
	"up": {}, "we": {},
	// unit abbreviations that legitimately appear as short tokens
	"oz": {}, "g": {}, "lb": {}, "ml": {}, "kg": {}, "qt": {}, "pt": {},
}

// titlePrepositionWords connect a protein to its treatment in dish names
// ("Chicken with Forty Cloves", "Shrimp over Grits").
var titlePrepositionWords = []string{
	"with", "in", "over", "on", "under", "and",
}
