package sqlite

// Schema DDL for the mirrored collections. List fields become link tables
// and every table carries the record's dataset position so queries can
// reproduce collection order.
const (
	createBosses = `CREATE TABLE bosses (
    position INTEGER PRIMARY KEY,
    boss_key TEXT NOT NULL,
    name TEXT NOT NULL
);`

	createSidekicks = `CREATE TABLE sidekicks (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    boss TEXT NOT NULL,
    loyalty_to_boss INTEGER NOT NULL
);`

	createWeapons = `CREATE TABLE weapons (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    damage INTEGER NOT NULL,
    weapon_range INTEGER NOT NULL
);`

	createCharacters = `CREATE TABLE characters (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);`

	createCharacterWeapons = `CREATE TABLE character_weapons (
    character_position INTEGER NOT NULL,
    position INTEGER NOT NULL,
    weapon TEXT NOT NULL,
    PRIMARY KEY (character_position, position),
    FOREIGN KEY (character_position) REFERENCES characters(position)
);`

	createInstructors = `CREATE TABLE instructors (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    module INTEGER NOT NULL
);`

	createCohorts = `CREATE TABLE cohorts (
    position INTEGER PRIMARY KEY,
    cohort INTEGER NOT NULL,
    module INTEGER NOT NULL,
    student_count INTEGER NOT NULL
);`

	createDinosaurs = `CREATE TABLE dinosaurs (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    carnivore INTEGER NOT NULL,
    is_awesome INTEGER NOT NULL
);`

	createHumans = `CREATE TABLE humans (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    year_born INTEGER NOT NULL,
    nationality TEXT NOT NULL,
    imdb_star_meter_rating INTEGER NOT NULL
);`

	createMovies = `CREATE TABLE movies (
    position INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    director TEXT NOT NULL,
    year_released INTEGER NOT NULL
);`

	createMovieCast = `CREATE TABLE movie_cast (
    movie_position INTEGER NOT NULL,
    position INTEGER NOT NULL,
    actor TEXT NOT NULL,
    leading INTEGER NOT NULL,
    PRIMARY KEY (movie_position, position),
    FOREIGN KEY (movie_position) REFERENCES movies(position)
);`

	createMovieDinos = `CREATE TABLE movie_dinos (
    movie_position INTEGER NOT NULL,
    position INTEGER NOT NULL,
    dino TEXT NOT NULL,
    PRIMARY KEY (movie_position, position),
    FOREIGN KEY (movie_position) REFERENCES movies(position)
);`

	createCakes = `CREATE TABLE cakes (
    position INTEGER PRIMARY KEY,
    cake_flavor TEXT NOT NULL,
    filling TEXT,
    frosting TEXT NOT NULL,
    in_stock INTEGER NOT NULL
);`

	createCakeToppings = `CREATE TABLE cake_toppings (
    cake_position INTEGER NOT NULL,
    position INTEGER NOT NULL,
    topping TEXT NOT NULL,
    PRIMARY KEY (cake_position, position),
    FOREIGN KEY (cake_position) REFERENCES cakes(position)
);`

	createClassrooms = `CREATE TABLE classrooms (
    position INTEGER PRIMARY KEY,
    room_letter TEXT NOT NULL,
    program TEXT NOT NULL,
    capacity INTEGER NOT NULL
);`
)

// Indexes for the join columns.
const (
	indexSidekicksBoss   = `CREATE INDEX idx_sidekicks_boss ON sidekicks(boss);`
	indexWeaponsName     = `CREATE INDEX idx_weapons_name ON weapons(name);`
	indexDinosaursName   = `CREATE INDEX idx_dinosaurs_name ON dinosaurs(name);`
	indexMovieCastActor  = `CREATE INDEX idx_movie_cast_actor ON movie_cast(actor);`
	indexCakeToppingName = `CREATE INDEX idx_cake_toppings_topping ON cake_toppings(topping);`
)

// schemaStatements lists the DDL in creation order. Parent tables precede
// the link tables that reference them.
var schemaStatements = []string{
	createBosses,
	createSidekicks,
	createWeapons,
	createCharacters,
	createCharacterWeapons,
	createInstructors,
	createCohorts,
	createDinosaurs,
	createHumans,
	createMovies,
	createMovieCast,
	createMovieDinos,
	createCakes,
	createCakeToppings,
	createClassrooms,
	indexSidekicksBoss,
	indexWeaponsName,
	indexDinosaursName,
	indexMovieCastActor,
	indexCakeToppingName,
}
