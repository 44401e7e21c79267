package reference

var featureCatalog = []FeatureEntry{
	{1, "Swimming Pool", "Exterior", "Pool"},
	{2, "Garage", "Exterior", "Garage"},
	{3, "Fireplace", "Interior", "Fireplace"},
	{4, "Garden", "Exterior", "Garden"},
	{5, "Rooftop", "Exterior", "Rooftop"},
	{6, "Gym", "Interior", "Fitness"},
	{7, "Basement", "Interior", "Basement"},
	{8, "Elevator", "Interior", "Accessibility"},
	{9, "Balcony", "Exterior", "Balcony"},
	{10, "Solar Panels", "Exterior", "Energy"},
	{11, "Smart Home System", "Technology", "Smart Home"},
	{12, "Security System", "Security", "Security System"},
	{13, "Sauna", "Interior", "Wellness"},
	{14, "Jacuzzi", "Interior", "Wellness"},
	{15, "Home Theater", "Interior", "Entertainment"},
	{16, "Green Roof", "Exterior", "Rooftop"},
	{17, "Modern Kitchen", "Interior", "Kitchen"},
	{18, "Playground", "Exterior", "Recreation"},
	{19, "Tennis Court", "Exterior", "Recreation"},
	{20, "Central Air Conditioning", "Interior", "Climate Control"},
	{21, "Spacious Backyard", "Exterior", "Yard"},
	{22, "City View", "Exterior", "View"},
	{23, "Fire Alarm", "Security", "Safety"},
	{24, "Sprinkler System", "Security", "Safety"},
	{25, "Energy-Efficient Appliances", "Energy Efficiency", "Appliances"},
	{26, "Water-Efficient Fixtures", "Energy Efficiency", "Fixtures"},
	{27, "Golf Course", "Exterior", "Recreation"},
	{28, "Home Office", "Interior", "Room"},
}
