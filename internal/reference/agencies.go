package reference

var agencyNames = []string{
	"Realty Associates", "Heritage Homes", "Century Properties", "Legacy Realty", "Sterling Realty",
	"Future Homes", "NextGen Realty", "Modern Living Properties", "Tech Realty", "Urban Edge Realty",
	"Neighborhood Realty", "Hometown Properties", "Local Legends Realty", "Community Choice Realty", "Neighborly Homes",
	"Premier Properties", "Elite Estates", "Luxury Living Realty", "Exclusive Estates", "Opulent Homes",
	"Home Sweet Home Realty", "Key Realty", "House Hunters Realty", "Property Pros", "Real Estate Solutions",
	"Dream Homes Realty", "The Key to Your Home", "Your Perfect Place", "Homeward Bound Realty", "Nest Egg Realty",
	"Buyer's Choice Realty", "Seller's Advantage Realty", "Investor's Edge Realty", "Rental Solutions Realty", "Commercial Corner Realty",
	"The Happy Home Hunters", "The Home Sweet Home Team", "The House Whisperers", "The Property Ninjas", "The Real Estate Wizards",
}
