package constants

import "github.com/julianstephens/lifetrack/internal/models"

// DefaultRoutine is one entry of the catalogue seeded on first run.
type DefaultRoutine struct {
	Name          string
	Category      models.Category
	ScheduledTime string // empty means anytime
	OrderIndex    int
}

// DefaultRoutines is the fixed set inserted, in order, when the routines
// table is empty at first run.
var DefaultRoutines = []DefaultRoutine{
	// Morning
	{"Wake up", models.CategoryMorning, "07:00", 1},
	{"Meditation", models.CategoryMorning, "07:15", 2},
	{"Coffee", models.CategoryMorning, "07:30", 3},
	{"Breakfast", models.CategoryMorning, "08:00", 4},

	// Work
	{"Start Work", models.CategoryWork, "09:00", 5},
	{"Mid-morning Break", models.CategoryWork, "10:30", 6},
	{"Lunch", models.CategoryWork, "12:30", 7},
	{"Afternoon Break", models.CategoryWork, "15:00", 8},
	{"End Work", models.CategoryWork, "18:00", 9},

	// Exercise
	{"Gym/Workout", models.CategoryExercise, "18:30", 10},
	{"Evening Walk", models.CategoryExercise, "19:30", 11},
	{"Vitamins", models.CategoryExercise, "20:00", 12},

	// Household
	{"Cook Dinner", models.CategoryHousehold, "19:00", 13},
	{"Dishes", models.CategoryHousehold, "20:00", 14},
	{"Laundry", models.CategoryHousehold, "", 15},
	{"Clean Room", models.CategoryHousehold, "", 16},

	// Evening
	{"Reading", models.CategoryEvening, "21:30", 17},
	{"Bedtime", models.CategoryEvening, "22:30", 18},
}

// CategoryInfo is display metadata for a category.
type CategoryInfo struct {
	Name  string
	Color string
}

var CategoryMeta = map[models.Category]CategoryInfo{
	models.CategoryMorning:   {Name: "Morning", Color: "#87CEEB"},
	models.CategoryWork:      {Name: "Work", Color: "#5B7C99"},
	models.CategoryExercise:  {Name: "Exercise", Color: "#52B788"},
	models.CategoryHousehold: {Name: "Household", Color: "#E8956B"},
	models.CategoryEvening:   {Name: "Evening", Color: "#9B59B6"},
}
