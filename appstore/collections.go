package appstore

// Collection names a curated ranking feed exposed by the store's RSS service.
type Collection = string

// Feed slugs for the store's front-page collections. Borrowed from
// https://github.com/facundoolano/app-store-scraper.
const (
	CollectionTopMac          Collection = "topmacapps" // Not working
	CollectionTopFreeMac      Collection = "topfreemacapps"
	CollectionTopGrossingMac  Collection = "topgrossingmacapps" // Not working
	CollectionTopPaidMac      Collection = "toppaidmacapps"     // Not working
	CollectionNewIOS          Collection = "newapplications"
	CollectionNewFreeIOS      Collection = "newfreeapplications"
	CollectionNewPaidIOS      Collection = "newpaidapplications"
	CollectionTopFreeIOS      Collection = "topfreeapplications"
	CollectionTopFreeIpad     Collection = "topfreeipadapplications"
	CollectionTopGrossing     Collection = "topgrossingapplications"
	CollectionTopGrossingIpad Collection = "topgrossingipadapplications"
	CollectionTopPaidIOS      Collection = "toppaidapplications"
	CollectionTopPaidIpad     Collection = "toppaidipadapplications"
)
