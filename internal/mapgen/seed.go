package mapgen

// SeedRestaurants is the boot roster. Positions are assigned by
// Generator.Generate; districts line up with the journal seed data.
func SeedRestaurants() []Restaurant {
	return []Restaurant{
		{ID: "rest_lantern_noodles", Name: "Lantern Noodle House", DistrictID: "dist_old_harbor"},
		{ID: "rest_saltworks", Name: "The Saltworks Canteen", DistrictID: "dist_old_harbor"},
		{ID: "rest_tidal_oven", Name: "Tidal Oven Bakery", DistrictID: "dist_old_harbor"},
		{ID: "rest_brass_kettle", Name: "Brass Kettle Teahouse", DistrictID: "dist_clockrow"},
		{ID: "rest_gearbox_grill", Name: "Gearbox Grill", DistrictID: "dist_clockrow"},
		{ID: "rest_midnight_dumpling", Name: "Midnight Dumpling Cart", DistrictID: "dist_clockrow"},
		{ID: "rest_paperlight", Name: "Paperlight Bistro", DistrictID: "dist_verdant_steps"},
		{ID: "rest_moss_and_marrow", Name: "Moss & Marrow", DistrictID: "dist_verdant_steps"},
		{ID: "rest_terrace_nine", Name: "Terrace Nine", DistrictID: "dist_verdant_steps"},
		{ID: "rest_ember_court", Name: "Ember Court", DistrictID: "dist_ashline"},
		{ID: "rest_cinder_bar", Name: "Cinder Bar", DistrictID: "dist_ashline"},
		{ID: "rest_last_stop", Name: "Last Stop Diner", DistrictID: "dist_ashline"},
	}
}
