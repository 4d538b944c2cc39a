package appstore

// Category is an App Store category. Chartable categories carry both a page
// slug and a numeric genre id; a handful of legacy entries only ever had a
// numeric id and cannot be used to build a charts-page URL.
type Category struct {
	Slug string
	ID   int
}

// Category ids borrowed from https://github.com/facundoolano/app-store-scraper.
var categories = map[string]Category{
	"APPLE_BOOKS":                    {Slug: "books-apps", ID: 6018},
	"APPLE_BUSINESS":                 {Slug: "business-apps", ID: 6000},
	"APPLE_CATALOGS":                 {ID: 6022},
	"APPLE_DEVELOPER_TOOLS":          {Slug: "developer-tools-apps", ID: 6026},
	"APPLE_EDUCATION":                {Slug: "education-apps", ID: 6017},
	"APPLE_ENTERTAINMENT":            {Slug: "entertainment-apps", ID: 6016},
	"APPLE_FINANCE":                  {Slug: "finance-apps", ID: 6015},
	"APPLE_FOOD_AND_DRINK":           {Slug: "food-drink-apps", ID: 6023},
	"APPLE_GAMES_FREE":               {Slug: "top-free-games", ID: 6014},
	"APPLE_GAMES_PAID":               {Slug: "top-paid-games", ID: 6014},
	"APPLE_GAMES_ACTION":             {Slug: "action-games", ID: 7001},
	"APPLE_GAMES_ADVENTURE":          {Slug: "adventure-games", ID: 7002},
	"APPLE_GAMES_ARCADE":             {ID: 7003},
	"APPLE_GAMES_BOARD":              {Slug: "board-games", ID: 7004},
	"APPLE_GAMES_CARD":               {Slug: "card-games", ID: 7005},
	"APPLE_GAMES_CASINO":             {Slug: "casino-games", ID: 7006},
	"APPLE_GAMES_CASUAL":             {Slug: "casual-games", ID: 7003},
	"APPLE_GAMES_DICE":               {ID: 7007},
	"APPLE_GAMES_EDUCATIONAL":        {ID: 7008},
	"APPLE_GAMES_FAMILY":             {Slug: "family-games", ID: 7009},
	"APPLE_GAMES_MUSIC":              {Slug: "music-games", ID: 7011},
	"APPLE_GAMES_PUZZLE":             {Slug: "puzzle-games", ID: 7012},
	"APPLE_GAMES_RACING":             {Slug: "racing-games", ID: 7013},
	"APPLE_GAMES_ROLE_PLAYING":       {Slug: "role-playing-games", ID: 7014},
	"APPLE_GAMES_SIMULATION":         {Slug: "simulation-games", ID: 7015},
	"APPLE_GAMES_SPORTS":             {Slug: "sports-games", ID: 7016},
	"APPLE_GAMES_STRATEGY":           {Slug: "strategy-games", ID: 7017},
	"APPLE_GAMES_TRIVIA":             {Slug: "trivia-games", ID: 7018},
	"APPLE_GAMES_WORD":               {Slug: "word-games", ID: 7019},
	"APPLE_GRAPHICS_AND_DESIGN":      {Slug: "graphics-design-apps", ID: 6027},
	"APPLE_HEALTH_AND_FITNESS":       {Slug: "health-fitness-apps", ID: 6013},
	"APPLE_LIFESTYLE":                {Slug: "lifestyle-apps", ID: 6012},
	"APPLE_MAGAZINES_AND_NEWSPAPERS": {Slug: "magazines-newspapers-apps", ID: 6021},
	"APPLE_MAGAZINES_ARTS":           {ID: 13007},
	"APPLE_MAGAZINES_AUTOMOTIVE":     {ID: 13006},
	"APPLE_MAGAZINES_WEDDINGS":       {ID: 13008},
	"APPLE_MAGAZINES_BUSINESS":       {ID: 13009},
	"APPLE_MAGAZINES_CHILDREN":       {ID: 13010},
	"APPLE_MAGAZINES_COMPUTER":       {ID: 13011},
	"APPLE_MAGAZINES_FOOD":           {ID: 13012},
	"APPLE_MAGAZINES_CRAFTS":         {ID: 13013},
	"APPLE_MAGAZINES_ELECTRONICS":    {ID: 13014},
	"APPLE_MAGAZINES_ENTERTAINMENT":  {ID: 13015},
	"APPLE_MAGAZINES_FASHION":        {ID: 13002},
	"APPLE_MAGAZINES_HEALTH":         {ID: 13017},
	"APPLE_MAGAZINES_HISTORY":        {ID: 13018},
	"APPLE_MAGAZINES_HOME":           {ID: 13003},
	"APPLE_MAGAZINES_LITERARY":       {ID: 13019},
	"APPLE_MAGAZINES_MEN":            {ID: 13020},
	"APPLE_MAGAZINES_MOVIES_AND_MUSIC": {ID: 13021},
	"APPLE_MAGAZINES_POLITICS":         {ID: 13001},
	"APPLE_MAGAZINES_OUTDOORS":         {ID: 13004},
	"APPLE_MAGAZINES_FAMILY":           {ID: 13023},
	"APPLE_MAGAZINES_PETS":             {ID: 13024},
	"APPLE_MAGAZINES_PROFESSIONAL":     {ID: 13025},
	"APPLE_MAGAZINES_REGIONAL":         {ID: 13026},
	"APPLE_MAGAZINES_SCIENCE":          {ID: 13027},
	"APPLE_MAGAZINES_SPORTS":           {ID: 13005},
	"APPLE_MAGAZINES_TEENS":            {ID: 13028},
	"APPLE_MAGAZINES_TRAVEL":           {ID: 13029},
	"APPLE_MAGAZINES_WOMEN":            {ID: 13030},
	"APPLE_MEDICAL":                    {Slug: "medical-apps", ID: 6020},
	"APPLE_MUSIC":                      {Slug: "music-apps", ID: 6011},
	"APPLE_NAVIGATION":                 {Slug: "navigation-apps", ID: 6010},
	"APPLE_NEWS":                       {Slug: "news-apps", ID: 6009},
	"APPLE_PHOTO_AND_VIDEO":            {Slug: "photo-video-apps", ID: 6008},
	"APPLE_PRODUCTIVITY":               {Slug: "productivity-apps", ID: 6007},
	"APPLE_REFERENCE":                  {Slug: "reference-apps", ID: 6006},
	"APPLE_SHOPPING":                   {Slug: "shopping-apps", ID: 6024},
	"APPLE_SOCIAL_NETWORKING":          {Slug: "social-networking-apps", ID: 6005},
	"APPLE_SPORTS":                     {Slug: "sports-apps", ID: 6004},
	"APPLE_TRAVEL":                     {Slug: "travel-apps", ID: 6003},
	"APPLE_UTILITIES":                  {Slug: "utilities-apps", ID: 6002},
	"APPLE_WEATHER":                    {Slug: "weather-apps", ID: 6001},
}

// CategoryByName resolves a category table name (e.g. "APPLE_GAMES_ACTION").
func CategoryByName(name string) (Category, error) {
	c, ok := categories[name]
	if !ok {
		return Category{}, storeErrorf("category not found for %s", name)
	}
	return c, nil
}
