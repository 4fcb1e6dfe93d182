package catalogbuild

var (
	cityColumns        = []string{"City", "city", "Nearest_City", "Nearest City", "Location"}
	nameColumns        = []string{"Place_Name", "Place Name", "Attraction", "Attraction_Name", "Name"}
	categoryColumns    = []string{"Category", "Type", "Place_Type", "Place Type"}
	descriptionColumns = []string{"Description", "Short_Description", "Famous_For", "Famous For", "Highlights"}

	costColumns = []string{
		"Ticket_Price",
		"Ticket Price",
		"Entry_Fee",
		"Entry Fee",
		"Entry_fee",
		"Entry_Fee_Rs",
		"Price",
		"Cost",
		"Entrance Fee in INR",
	}

	durationColumns = []string{
		"Time_required_hours",
		"Time_Required",
		"Time Required",
		"Ideal_Visit_Duration",
		"Ideal Visit Duration",
		"Duration",
		"time needed to visit in hrs",
	}

	accommodationCostColumns = []string{"Accomdation_Cost", "Accomadation_Cost", "Accommodation_Cost", "Cost"}
)
