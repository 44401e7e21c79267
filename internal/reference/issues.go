package reference

var issueDescriptions = []string{
	// pests
	"Ant infestation in the kitchen",
	"Cockroach infestation in the bathroom",
	"Rodent infestation in the attic or basement",
	"Bed bug infestation in the bedroom",
	// plumbing
	"Slow-draining bathtub",
	"Leaky toilet tank",
	"Water heater not heating water to the desired temperature",
	"Clogged kitchen sink disposal",
	"Water damage in the basement",
	// electrical
	"Dimming lights in certain rooms",
	"Frequent tripping of circuit breakers",
	"Electrical outlets not working",
	"Buzzing sound from electrical outlets",
	"Flickering lights",
	// hvac
	"Uneven heating or cooling in different rooms",
	"High energy bills due to inefficient HVAC system",
	"Strange noises coming from the HVAC unit",
	"HVAC system not turning on or off as scheduled",
	"Poor air quality due to inadequate ventilation",
	// appliances
	"Refrigerator not cooling or freezing properly",
	"Dishwasher not cleaning dishes effectively",
	"Stove or oven not heating correctly",
	"Washing machine not draining or spinning properly",
	"Dryer not drying clothes efficiently",
	// security
	"Broken or malfunctioning security system",
	"Unauthorized access to the property",
	"Suspicious activity in the neighborhood",
	"Lost or stolen keys",
	// exterior
	"Damaged or missing roof shingles",
	"Leaky gutters or downspouts",
	"Cracked or uneven driveway or walkway",
	"Peeling paint on the exterior walls",
	"Damaged or overgrown landscaping",
	"Faulty outdoor lighting",
	// interior
	"Scratched or damaged flooring",
	"Water stains on the ceiling or walls",
	"Mold or mildew growth in damp areas",
	"Squeaky floors or doors",
	"Drafty windows or doors",
	"Damaged or missing ceiling tiles",
	// noise
	"Loud noise from neighbors",
	"Excessive noise from traffic or construction",
	"Noise from pets or children",
	// damage
	"Vandalism or graffiti",
	"Water damage from a leak or flood",
	"Fire damage",
	"Storm damage (e.g., wind, hail, lightning)",
	"Accidental damage (e.g., broken windows, damaged walls)",
}
