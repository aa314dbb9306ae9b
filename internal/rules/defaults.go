package rules

// Static exclusion catalogues. All terms are lowercase; matching against
// them is case- and apostrophe-insensitive (see internal/classify).
// Append-only: removing a term silently re-admits postings that operators
// have already judged unwanted.

// defaultExcludedCompanies lists recruiters, staffing agencies, large
// contract-catering groups and hotel mega-brands whose postings are not
// direct single-property employer listings.
var defaultExcludedCompanies = []string{
	"gecko hospitality",
	"goodwin recruiting",
	"patrice & associates",
	"horizon hospitality",
	"bristol associates",
	"persone nyc",
	"tuttle hospitality search",
	"american recruiters",
	"ehs recruiting",
	"willow tree recruiting",
	"selective restaurant recruiters",
	"restaurant talent group",
	"compass group",
	"aramark",
	"sodexo",
	"delaware north",
	"marriott",
	"hilton",
	"hyatt",
	"staffing",
	"recruiting",
	"recruiters",
	"recruitment",
	"talent acquisition",
	"executive search",
	"indeed",
	"ziprecruiter",
	"jobs2careers",
	"lensa",
	"jobleads",
}

// keywordCategories are checked before the company list: any company name
// containing one of these is an institutional employer outside the
// restaurant/hospitality focus of the feed.
var keywordCategories = []string{
	"college",
	"university",
	"school district",
	"hospital",
	"healthcare",
	"health care",
	"medical center",
	"senior living",
	"assisted living",
	"nursing",
	"rehabilitation",
	"correctional",
}

// defaultFastFood lists quick-service chains. Short entries here rely on
// the boundary-aware matcher so that e.g. "wendy's" does not fire on
// "Wendy Johnson Consulting".
var defaultFastFood = []string{
	"mcdonald's",
	"burger king",
	"wendy's",
	"taco bell",
	"kfc",
	"subway",
	"chick-fil-a",
	"chipotle",
	"domino's",
	"pizza hut",
	"papa john's",
	"little caesars",
	"popeyes",
	"dunkin",
	"starbucks",
	"sonic drive-in",
	"arby's",
	"panda express",
	"five guys",
	"jimmy john's",
	"jersey mike's",
	"dairy queen",
	"panera bread",
	"jack in the box",
	"whataburger",
	"in-n-out",
	"white castle",
	"carl's jr",
	"hardee's",
	"wingstop",
	"raising cane's",
	"zaxby's",
	"bojangles",
	"culver's",
	"checkers",
	"del taco",
	"el pollo loco",
	"waffle house",
}

// defaultRestaurantChains is the broader casual-dining list. These are real
// kitchens, but multi-hundred-unit concepts with centralized recipes are
// out of scope for a feed aimed at independent culinary roles.
var defaultRestaurantChains = []string{
	"applebee's",
	"olive garden",
	"chili's",
	"outback steakhouse",
	"red lobster",
	"tgi friday",
	"buffalo wild wings",
	"cheesecake factory",
	"texas roadhouse",
	"longhorn steakhouse",
	"cracker barrel",
	"red robin",
	"golden corral",
	"ruby tuesday",
	"p.f. chang's",
	"bonefish grill",
	"carrabba's",
	"hooters",
	"denny's",
	"ihop",
	"bob evans",
	"perkins",
	"village inn",
	"friendly's",
	"o'charley's",
	"bj's restaurant",
	"yard house",
	"dave & buster's",
	"twin peaks",
	"first watch",
	"eggs up grill",
	"metro diner",
}

// defaultExcludedDomains are job boards and aggregators. Web-search results
// landing on one of these hosts are listings we already get (or deliberately
// skip) through the structured providers, never a direct employer page.
var defaultExcludedDomains = []string{
	"indeed.com",
	"ziprecruiter.com",
	"linkedin.com",
	"glassdoor.com",
	"monster.com",
	"simplyhired.com",
	"snagajob.com",
	"careerbuilder.com",
	"lensa.com",
	"talent.com",
	"jooble.org",
	"bebee.com",
	"whatjobs.com",
	"jobs2careers.com",
	"adzuna.com",
	"culinaryagents.com",
	"hcareers.com",
	"poachedjobs.com",
	"salary.com",
	"jobrapido.com",
	"recruit.net",
}
