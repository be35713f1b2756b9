package domain

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type (
	BookInterest      string
	SportInterest     string
	MovieInterest     string
	MusicInterest     string
	FoodInterest      string
	LifestyleInterest string
	TravelInterest    string
	HobbyInterest     string
)

// The validator oneof tags on profile requests list the same values.
const (
	BookFantasy        BookInterest = "Fantasy"
	BookScienceFiction BookInterest = "ScienceFiction"
	BookMystery        BookInterest = "Mystery"
	BookThriller       BookInterest = "Thriller"
	BookRomance        BookInterest = "Romance"
	BookHorror         BookInterest = "Horror"
	BookBiography      BookInterest = "Biography"
	BookHistory        BookInterest = "History"
	BookPoetry         BookInterest = "Poetry"
	BookSelfHelp       BookInterest = "SelfHelp"
)

const (
	SportFootball    SportInterest = "Football"
	SportBasketball  SportInterest = "Basketball"
	SportTennis      SportInterest = "Tennis"
	SportRunning     SportInterest = "Running"
	SportSwimming    SportInterest = "Swimming"
	SportCycling     SportInterest = "Cycling"
	SportYoga        SportInterest = "Yoga"
	SportGym         SportInterest = "Gym"
	SportHiking      SportInterest = "Hiking"
	SportMartialArts SportInterest = "MartialArts"
)

const (
	MovieAction         MovieInterest = "Action"
	MovieComedy         MovieInterest = "Comedy"
	MovieDrama          MovieInterest = "Drama"
	MovieThriller       MovieInterest = "Thriller"
	MovieHorror         MovieInterest = "Horror"
	MovieRomance        MovieInterest = "Romance"
	MovieScienceFiction MovieInterest = "ScienceFiction"
	MovieDocumentary    MovieInterest = "Documentary"
	MovieAnimation      MovieInterest = "Animation"
	MovieFantasy        MovieInterest = "Fantasy"
)

const (
	MusicRock       MusicInterest = "Rock"
	MusicPop        MusicInterest = "Pop"
	MusicJazz       MusicInterest = "Jazz"
	MusicClassical  MusicInterest = "Classical"
	MusicHipHop     MusicInterest = "HipHop"
	MusicElectronic MusicInterest = "Electronic"
	MusicMetal      MusicInterest = "Metal"
	MusicCountry    MusicInterest = "Country"
	MusicIndie      MusicInterest = "Indie"
	MusicBlues      MusicInterest = "Blues"
)

const (
	FoodItalian    FoodInterest = "Italian"
	FoodJapanese   FoodInterest = "Japanese"
	FoodMexican    FoodInterest = "Mexican"
	FoodIndian     FoodInterest = "Indian"
	FoodChinese    FoodInterest = "Chinese"
	FoodFrench     FoodInterest = "French"
	FoodVegan      FoodInterest = "Vegan"
	FoodVegetarian FoodInterest = "Vegetarian"
	FoodStreetFood FoodInterest = "StreetFood"
	FoodFastFood   FoodInterest = "FastFood"
)

const (
	LifestyleActive      LifestyleInterest = "Active"
	LifestyleHomebody    LifestyleInterest = "Homebody"
	LifestyleNightOwl    LifestyleInterest = "NightOwl"
	LifestyleEarlyBird   LifestyleInterest = "EarlyBird"
	LifestyleMinimalist  LifestyleInterest = "Minimalist"
	LifestyleSocial      LifestyleInterest = "Social"
	LifestyleIntrovert   LifestyleInterest = "Introvert"
	LifestyleAdventurous LifestyleInterest = "Adventurous"
)

const (
	TravelBeach       TravelInterest = "Beach"
	TravelMountains   TravelInterest = "Mountains"
	TravelCityBreaks  TravelInterest = "CityBreaks"
	TravelBackpacking TravelInterest = "Backpacking"
	TravelRoadTrips   TravelInterest = "RoadTrips"
	TravelCruises     TravelInterest = "Cruises"
	TravelCamping     TravelInterest = "Camping"
	TravelLuxury      TravelInterest = "Luxury"
)

const (
	HobbyPhotography  HobbyInterest = "Photography"
	HobbyGaming       HobbyInterest = "Gaming"
	HobbyCooking      HobbyInterest = "Cooking"
	HobbyPainting     HobbyInterest = "Painting"
	HobbyReading      HobbyInterest = "Reading"
	HobbyGardening    HobbyInterest = "Gardening"
	HobbyDancing      HobbyInterest = "Dancing"
	HobbyWriting      HobbyInterest = "Writing"
	HobbyCrafts       HobbyInterest = "Crafts"
	HobbyVolunteering HobbyInterest = "Volunteering"
)
