package ideas

// Category is the broad theme of an activity idea.
type Category string

const (
	CategoryCulture    Category = "CULTURE"
	CategoryNature     Category = "NATURE"
	CategoryFood       Category = "FOOD"
	CategoryAdventure  Category = "ADVENTURE"
	CategoryRelaxation Category = "RELAXATION"
	CategoryShopping   Category = "SHOPPING"
	CategoryNightlife  Category = "NIGHTLIFE"
	CategoryTransport  Category = "TRANSPORT"
)

// ActivityType is the kind of venue an activity happens at. It is classified
// independently of Category and only biases budget and duration estimates.
type ActivityType string

const (
	TypeMuseum     ActivityType = "MUSEUM"
	TypeLandmark   ActivityType = "LANDMARK"
	TypePark       ActivityType = "PARK"
	TypeBeach      ActivityType = "BEACH"
	TypeRestaurant ActivityType = "RESTAURANT"
	TypeAdventure  ActivityType = "ADVENTURE"
	TypeShopping   ActivityType = "SHOPPING"
	TypeEvent      ActivityType = "EVENT"
)

// BudgetCategory matches the trip budget buckets used by the planner.
type BudgetCategory string

const (
	BudgetAccommodation  BudgetCategory = "accommodation"
	BudgetTransportation BudgetCategory = "transportation"
	BudgetFood           BudgetCategory = "food"
	BudgetActivities     BudgetCategory = "activities"
	BudgetShopping       BudgetCategory = "shopping"
	BudgetOther          BudgetCategory = "other"
)

// Declaration order matters: classification ties go to the earlier entry.
var categoryOrder = []Category{
	CategoryCulture,
	CategoryNature,
	CategoryFood,
	CategoryAdventure,
	CategoryRelaxation,
	CategoryShopping,
	CategoryNightlife,
	CategoryTransport,
}

var typeOrder = []ActivityType{
	TypeMuseum,
	TypeLandmark,
	TypePark,
	TypeBeach,
	TypeRestaurant,
	TypeAdventure,
	TypeShopping,
	TypeEvent,
}

var budgetOrder = []BudgetCategory{
	BudgetAccommodation,
	BudgetTransportation,
	BudgetFood,
	BudgetActivities,
	BudgetShopping,
	BudgetOther,
}

var categoryKeywords = map[Category][]string{
	CategoryCulture: {
		"museum", "gallery", "history", "historic", "heritage", "art",
		"architecture", "palace", "castle", "cathedral", "church", "temple",
		"monument", "ruins", "culture", "cultural", "theater", "opera", "exhibition",
	},
	CategoryNature: {
		"park", "garden", "mountain", "lake", "river", "forest", "hiking",
		"trail", "nature", "wildlife", "waterfall", "valley", "scenic", "national",
	},
	CategoryFood: {
		"food", "restaurant", "cuisine", "cafe", "dining", "wine", "bakery",
		"tasting", "culinary", "market", "coffee", "seafood",
	},
	CategoryAdventure: {
		"adventure", "climbing", "rafting", "kayak", "diving", "surfing",
		"zipline", "trek", "paragliding", "safari", "bungee", "skiing", "canyon",
	},
	CategoryRelaxation: {
		"spa", "beach", "relax", "resort", "massage", "yoga", "wellness",
		"springs", "sunset", "pool", "thermal",
	},
	CategoryShopping: {
		"shopping", "shop", "boutique", "market", "mall", "bazaar", "souvenir",
		"crafts", "fashion", "antique",
	},
	CategoryNightlife: {
		"nightlife", "bar", "club", "pub", "cocktail", "music", "jazz", "dance",
		"party", "night",
	},
	CategoryTransport: {
		"train", "bus", "ferry", "tram", "metro", "cable", "boat", "cruise",
		"bike", "railway", "station",
	},
}

var typeKeywords = map[ActivityType][]string{
	TypeMuseum:     {"museum", "gallery", "exhibition", "exhibit", "collection", "art", "science"},
	TypeLandmark:   {"landmark", "monument", "historic", "palace", "castle", "cathedral", "tower", "bridge", "square", "ruins", "statue"},
	TypePark:       {"park", "garden", "nature", "forest", "lake", "mountain", "trail", "zoo"},
	TypeBeach:      {"beach", "coast", "ocean", "sea", "island", "bay", "surf", "sand"},
	TypeRestaurant: {"restaurant", "food", "cuisine", "cafe", "dining", "bistro", "wine"},
	TypeAdventure:  {"adventure", "hiking", "climbing", "rafting", "kayak", "diving", "trek", "safari"},
	TypeShopping:   {"shopping", "shop", "market", "boutique", "mall", "bazaar", "souvenir"},
	TypeEvent:      {"festival", "concert", "event", "show", "performance", "theater", "music", "nightlife"},
}

var typeBudget = map[ActivityType]BudgetCategory{
	TypeMuseum:     BudgetActivities,
	TypeRestaurant: BudgetFood,
	TypeAdventure:  BudgetActivities,
	TypeShopping:   BudgetShopping,
	TypeEvent:      BudgetActivities,
}

var categoryBudget = map[Category]BudgetCategory{
	CategoryCulture:    BudgetActivities,
	CategoryNature:     BudgetActivities,
	CategoryFood:       BudgetFood,
	CategoryAdventure:  BudgetActivities,
	CategoryRelaxation: BudgetActivities,
	CategoryShopping:   BudgetShopping,
	CategoryNightlife:  BudgetOther,
	CategoryTransport:  BudgetTransportation,
}

// Base durations in hours.
var typeDuration = map[ActivityType]float64{
	TypeMuseum:     2.0,
	TypeLandmark:   1.5,
	TypePark:       2.0,
	TypeBeach:      3.0,
	TypeRestaurant: 1.5,
	TypeAdventure:  3.0,
	TypeShopping:   2.0,
	TypeEvent:      2.5,
}

var categoryDuration = map[Category]float64{
	CategoryCulture:    2.0,
	CategoryNature:     2.5,
	CategoryFood:       1.5,
	CategoryAdventure:  3.0,
	CategoryRelaxation: 2.0,
	CategoryShopping:   2.0,
	CategoryNightlife:  3.0,
	CategoryTransport:  1.0,
}

// Every title template carries both {keyword} and {type}.
var titleTemplates = map[Category][]string{
	CategoryCulture: {
		"Explore the {keyword} {type}",
		"Discover {keyword} heritage at the {type}",
		"Guided tour of the {keyword} {type}",
		"Step back in time at a {keyword} {type}",
	},
	CategoryNature: {
		"Hike to the {keyword} {type}",
		"Wander through the {keyword} {type}",
		"Sunrise at the {keyword} {type}",
		"Picnic by the {keyword} {type}",
	},
	CategoryFood: {
		"Taste {keyword} specialties at a local {type}",
		"Sample the {keyword} flavors of a {type}",
		"Cooking class featuring {keyword} at a {type}",
		"Evening {keyword} feast at a {type}",
	},
	CategoryAdventure: {
		"Thrilling {keyword} expedition to the {type}",
		"Try {keyword} at the {type}",
		"Conquer the {keyword} {type}",
		"Half-day {keyword} challenge at the {type}",
	},
	CategoryRelaxation: {
		"Unwind at a {keyword} {type}",
		"Slow afternoon at the {keyword} {type}",
		"Recharge with {keyword} time at a {type}",
		"Golden hour at the {keyword} {type}",
	},
	CategoryShopping: {
		"Browse {keyword} finds at the {type}",
		"Hunt for {keyword} souvenirs at a {type}",
		"Shop the {keyword} stalls of the {type}",
		"Discover local {keyword} crafts at a {type}",
	},
	CategoryNightlife: {
		"Night out at a {keyword} {type}",
		"Catch live {keyword} at a {type}",
		"Late-night {keyword} crawl through the {type}",
		"Toast the evening at a {keyword} {type}",
	},
	CategoryTransport: {
		"Scenic {keyword} ride on the {type}",
		"Hop on the {keyword} {type}",
		"Take the {keyword} route by {type}",
		"Journey past {keyword} sights on the {type}",
	},
}

var descriptionTemplates = map[Category][]string{
	CategoryCulture: {
		"Immerse yourself in the history and traditions of {destination} at one of its most treasured cultural sites.",
		"See how art and architecture have shaped {destination} over the centuries.",
		"A rewarding stop for anyone curious about the story behind {destination}.",
	},
	CategoryNature: {
		"Trade the city streets for fresh air and open views just outside {destination}.",
		"Take in the landscapes that make {destination} special, at your own pace.",
		"A chance to slow down and enjoy the natural side of {destination}.",
	},
	CategoryFood: {
		"Eat your way through the flavors that locals in {destination} love most.",
		"Discover the dishes {destination} is known for, served the way they are meant to be.",
		"A delicious introduction to the food culture of {destination}.",
	},
	CategoryAdventure: {
		"Get your heart racing with one of the most exciting experiences {destination} has to offer.",
		"For the group members who want a story to tell after visiting {destination}.",
		"Push your limits and see {destination} from a completely different angle.",
	},
	CategoryRelaxation: {
		"Leave the itinerary behind for a few hours and recharge in {destination}.",
		"A calm, unhurried break from sightseeing in {destination}.",
		"Treat the whole group to some well-earned downtime in {destination}.",
	},
	CategoryShopping: {
		"Pick up something to remember {destination} by, straight from local makers.",
		"Browse the stalls and shops where {destination} does its best trading.",
		"Find one-of-a-kind gifts you will not see anywhere but {destination}.",
	},
	CategoryNightlife: {
		"Experience {destination} after dark, when the city really comes alive.",
		"Great music, good company and a taste of the local scene in {destination}.",
		"End the day the way locals in {destination} do.",
	},
	CategoryTransport: {
		"Getting around is half the fun: see {destination} from a new vantage point.",
		"A memorable ride that doubles as a sightseeing tour of {destination}.",
		"Combine getting from A to B with some of the best views in {destination}.",
	},
}

var typePhrases = map[Category][]string{
	CategoryCulture:    {"history museum", "ancient ruins", "art gallery", "old town", "cultural center"},
	CategoryNature:     {"national park", "botanical garden", "scenic overlook", "mountain trail", "lakeside path"},
	CategoryFood:       {"street food market", "family-run bistro", "wine cellar", "food hall", "seaside cafe"},
	CategoryAdventure:  {"canyon", "climbing wall", "white-water river", "backcountry trail", "dive site"},
	CategoryRelaxation: {"spa retreat", "quiet beach", "thermal baths", "garden terrace", "hillside resort"},
	CategoryShopping:   {"artisan market", "boutique street", "flea market", "design district", "covered bazaar"},
	CategoryNightlife:  {"rooftop bar", "jazz club", "night market", "cocktail lounge", "live music venue"},
	CategoryTransport:  {"cable car", "river ferry", "heritage railway", "tram line", "harbor cruise"},
}

var genericTypePhrases = []string{"spot", "place", "location", "area", "site"}

// Categories returns every category in classification order.
func Categories() []Category {
	return append([]Category(nil), categoryOrder...)
}

// ActivityTypes returns every activity type in classification order.
func ActivityTypes() []ActivityType {
	return append([]ActivityType(nil), typeOrder...)
}

// BudgetCategories returns every budget bucket.
func BudgetCategories() []BudgetCategory {
	return append([]BudgetCategory(nil), budgetOrder...)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryKeywords[c]
	return ok
}

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	_, ok := typeKeywords[t]
	return ok
}

// TaxonomyInfo lists the closed value sets the generator works with.
type TaxonomyInfo struct {
	Categories       []Category       `json:"categories" yaml:"categories"`
	ActivityTypes    []ActivityType   `json:"activity_types" yaml:"activity_types"`
	BudgetCategories []BudgetCategory `json:"budget_categories" yaml:"budget_categories"`
}

func Taxonomy() TaxonomyInfo {
	return TaxonomyInfo{
		Categories:       Categories(),
		ActivityTypes:    ActivityTypes(),
		BudgetCategories: BudgetCategories(),
	}
}
