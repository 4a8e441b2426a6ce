package types

// Kitty is a record of the kitties collection.
type Kitty struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Color string `json:"color"`
}

// Club lists the people belonging to one club.
type Club struct {
	Club    string   `json:"club"`
	Members []string `json:"members"`
}

// Mod is a module with its head counts.
type Mod struct {
	Mod         int `json:"mod"`
	Students    int `json:"students"`
	Instructors int `json:"instructors"`
}

// Cake is a record of the cakes collection. Filling is null for cakes
// without one.
type Cake struct {
	CakeFlavor string   `json:"cakeFlavor"`
	Filling    *string  `json:"filling"`
	Frosting   string   `json:"frosting"`
	Toppings   []string `json:"toppings"`
	InStock    int      `json:"inStock"`
}

// Classroom programs.
const (
	ProgramFrontEnd = "FE"
	ProgramBackEnd  = "BE"
)

// Classroom is a room with the program it hosts.
type Classroom struct {
	RoomLetter string `json:"roomLetter"`
	Program    string `json:"program"`
	Capacity   int    `json:"capacity"`
}

// Book is a record of the books collection.
type Book struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Published int    `json:"published"`
}

// Temperature is a daily high/low pair.
type Temperature struct {
	High int `json:"high"`
	Low  int `json:"low"`
}

// Weather is the current weather of one location.
type Weather struct {
	Location    string      `json:"location"`
	Type        string      `json:"type"`
	Humidity    int         `json:"humidity"`
	Temperature Temperature `json:"temperature"`
}

// NationalPark is a park with the activities it offers.
type NationalPark struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Visited    bool     `json:"visited"`
	Activities []string `json:"activities"`
}

// Beer is embedded in a Brewery.
type Beer struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	ABV  float64 `json:"abv"`
	IBU  int     `json:"ibu"`
}

// Brewery is a record of the breweries collection.
type Brewery struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Beers   []Beer `json:"beers"`
}
