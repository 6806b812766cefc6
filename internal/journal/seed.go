package journal

// Seed data for a fresh city. Districts line up with mapgen's restaurant
// roster; shard Seq values define the timeline order.

func SeedDistricts() []District {
	return []District{
		{ID: "dist_old_harbor", Name: "Old Harbor", Description: "Salt-stained piers and the city's oldest kitchens.", Mood: "wistful"},
		{ID: "dist_clockrow", Name: "Clockrow", Description: "Workshop quarter where every meal runs on a schedule.", Mood: "restless"},
		{ID: "dist_verdant_steps", Name: "Verdant Steps", Description: "Terraced gardens climbing away from the flood line.", Mood: "hopeful"},
		{ID: "dist_ashline", Name: "Ashline", Description: "The burned blocks nobody rebuilt, except the cooks.", Mood: "defiant"},
	}
}

func SeedCharacters() []Character {
	return []Character{
		{ID: "char_mirelle", Name: "Mirelle Vasq", Role: "harbor cook", Bio: "Ran the Saltworks Canteen through three floods. Remembers every regular's order and most of their secrets."},
		{ID: "char_osei", Name: "Osei Tamb", Role: "clockmaker", Bio: "Keeps Clockrow's ovens ticking. Claims the city's heartbeat is just everyone's kettles boiling in sync."},
		{ID: "char_petra", Name: "Petra Holloway", Role: "gardener", Bio: "Planted the Verdant Steps from seed smuggled out of the old botanical archive."},
		{ID: "char_july", Name: "July", Role: "courier", Bio: "No surname, no fixed address. Knows which Ashline kitchens feed you without asking questions."},
	}
}

func SeedShards() []Shard {
	return []Shard{
		{ID: "shard_first_ferry", Title: "The First Ferry", Seq: 1, DistrictID: "dist_old_harbor", CharacterID: "char_mirelle",
			Body: "Before the bridges, everything arrived by ferry: flour, gossip, strangers. Mirelle says the canteen's first menu was whatever the morning boat forgot to deliver elsewhere."},
		{ID: "shard_salt_ledger", Title: "The Salt Ledger", Seq: 2, DistrictID: "dist_old_harbor", CharacterID: "char_mirelle",
			Body: "A water-swollen ledger lists debts paid in salt. The last entry is crossed out so hard the pen tore through four pages."},
		{ID: "shard_lantern_night", Title: "Lantern Night", Seq: 3, DistrictID: "dist_old_harbor",
			Body: "Once a year the harbor hangs lanterns for the boats that never came back. The noodle house stays open until the last one burns out."},
		{ID: "shard_wound_spring", Title: "The Wound Spring", Seq: 4, DistrictID: "dist_clockrow", CharacterID: "char_osei",
			Body: "Osei's first commission: a clock that runs backwards one hour a year, 'so the city can owe itself some time.' It still hangs in the Brass Kettle."},
		{ID: "shard_gearbox_bet", Title: "The Gearbox Bet", Seq: 5, DistrictID: "dist_clockrow",
			Body: "The grill got its name from a wager: a full machinist's gearbox against a year of lunches. Nobody will say who lost."},
		{ID: "shard_terrace_seeds", Title: "Smuggled Seeds", Seq: 6, DistrictID: "dist_verdant_steps", CharacterID: "char_petra",
			Body: "Petra carried the archive's seed vault out in soup tins. The customs stamp on one tin is still framed above Terrace Nine's pass."},
		{ID: "shard_green_flood", Title: "The Green Flood", Seq: 7, DistrictID: "dist_verdant_steps",
			Body: "The year the gardens overgrew their walls, the Steps fed every district for free. The menus from that summer list no prices."},
		{ID: "shard_ash_kitchen", Title: "The Ash Kitchen", Seq: 8, DistrictID: "dist_ashline", CharacterID: "char_july",
			Body: "After the fire, the first thing rebuilt was a stove. July says Ember Court's foundation stone is a griddle, and nobody has dug it up to check."},
		{ID: "shard_last_stop", Title: "Last Stop, First Light", Seq: 9, DistrictID: "dist_ashline", CharacterID: "char_july",
			Body: "The diner at the end of the tram line never closes. Drivers say the lights were on even the night the grid went down."},
		{ID: "shard_unsent_letter", Title: "The Unsent Letter", Seq: 10, DistrictID: "dist_ashline",
			Body: "Found behind the Cinder Bar's mirror: a letter addressed to the whole city, signed by no one, apologizing for something it never names."},
	}
}
