package databases

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/teckion/dealership-api/models"
)

// Default insurance plans attached to catalog vehicles
var defaultInsurance = []models.InsurancePlan{
	{ID: "ins1", Provider: "HDFC Ergo", Name: "Titanium Zero Dep", Premium: 45000, Type: models.PlanZeroDep,
		Addons: []string{"Engine Protect", "Key Loss", "RTI"}, CoverageDetails: "100% coverage on metal and plastic parts."},
	{ID: "ins2", Provider: "ICICI Lombard", Name: "Pay-As-You-Drive", Premium: 22000, Type: models.PlanPayAsYouDrive,
		Addons: []string{"Roadside Assistance"}, CoverageDetails: "Ideal for low usage. Premium based on KM driven."},
	{ID: "ins3", Provider: "Digit", Name: "Standard Comprehensive", Premium: 30000, Type: models.PlanComprehensive,
		Addons: []string{"Personal Accident"}, CoverageDetails: "Standard own damage + third party coverage."},
}

func catalogID(hex string) primitive.ObjectID {
	id, _ := primitive.ObjectIDFromHex(hex)
	return id
}

// DefaultCatalog returns the built-in vehicle catalog. It seeds a fresh
// deployment and backs the matching fallback so a buyer is never shown an
// empty result against an empty inventory.
func DefaultCatalog() []models.Vehicle {
	return []models.Vehicle{
		{
			ID: catalogID("665f1a000000000000000001"),
			Details: models.VehicleDetails{
				Name: "Terra Explorer X", Trim: "Alpine Edition", Drive: "AWD", Seats: 5,
				PriceRange: [2]int64{3600000, 4200000},
				UseCases:   []string{"Trekking", "Off-road", "Adventure", "Dogs", "Camping", "Mountain"},
				FAndI:      []string{"Adventure Pack"},
				VisualDesc: "Rugged silver SUV with roof rack, mud tires, and high ground clearance",
				ContractTemplate: "<h3>OFF-ROAD VEHICLE SALES AGREEMENT</h3><p><b>1. THE PARTIES</b><br>Buyer: {{buyer_name}}<br>Seller: Teckion Auto</p>" +
					"<p><b>2. UNIT DESCRIPTION</b><br>Model: {{vehicle_name}}<br>Trim: Alpine Edition<br>VIN: [VIN]</p>" +
					"<p><b>3. OFF-ROAD DISCLAIMER</b><br>Seller is not liable for damage on non-paved roads. Warranty covers powertrain only.</p>",
				InsuranceOptions: defaultInsurance,
			},
		},
		{
			ID: catalogID("665f1a000000000000000002"),
			Details: models.VehicleDetails{
				Name: "CityGlider EV", Trim: "Urban Prime", Drive: "FWD", Seats: 4,
				PriceRange: [2]int64{2250000, 2600000},
				UseCases:   []string{"City Commute", "Eco-Friendly", "Budget", "Small Family", "Student", "Efficient"},
				FAndI:      []string{"Green Tax Credit"},
				VisualDesc: "Compact white electric hatchback, futuristic rounded design, aerodynamic wheels",
				ContractTemplate: "<h3>EV PURCHASE AGREEMENT</h3><p><b>1. THE PARTIES</b><br>Buyer: {{buyer_name}}<br>Seller: Teckion Auto</p>" +
					"<p><b>2. VEHICLE</b><br>Model: {{vehicle_name}}<br>VIN: [VIN]</p>" +
					"<p><b>3. BATTERY</b><br>The battery is sold with the vehicle. 8-year manufacturer warranty applies to the HV battery.</p>",
				InsuranceOptions: defaultInsurance[1:],
			},
		},
		{
			ID: catalogID("665f1a000000000000000003"),
			Details: models.VehicleDetails{
				Name: "Luxor S-Class", Trim: "Executive", Drive: "RWD", Seats: 5,
				PriceRange: [2]int64{8800000, 11000000},
				UseCases:   []string{"Luxury Preference", "Business", "Comfort", "Clients", "Highway", "Status"},
				FAndI:      []string{"Executive Lease"},
				VisualDesc: "Black luxury sedan, chrome accents, long wheelbase, tinted windows",
				ContractTemplate: "<h3>LUXURY VEHICLE PURCHASE AGREEMENT</h3><p><b>1. THE PARTIES</b><br>Client: {{buyer_name}}<br>Seller: Teckion Luxury</p>" +
					"<p><b>2. CONCIERGE SERVICE</b><br>Includes 3 years of scheduled maintenance and valet pickup.</p>",
				InsuranceOptions: defaultInsurance[:1],
			},
		},
		{
			ID: catalogID("665f1a000000000000000004"),
			Details: models.VehicleDetails{
				Name: "FamilyHauler 5000", Trim: "Platinum Minivan", Drive: "AWD", Seats: 8,
				PriceRange: [2]int64{3200000, 3800000},
				UseCases:   []string{"Family", "Safety-First", "Roadtrips", "Kids", "Pets", "7 Seater", "8 Seater", "Space"},
				FAndI:      []string{"Family Protection Plan"},
				VisualDesc: "Blue minivan, sliding doors, roof rails, spacious interior visibility",
				ContractTemplate: "<h3>FAMILY VEHICLE SALE</h3><p><b>1. THE PARTIES</b><br>Buyer: {{buyer_name}}<br>Seller: Teckion Auto</p>" +
					"<p><b>2. SAFETY INSPECTION</b><br>Certified child seat anchors verified. 5-star safety rating certificate attached.</p>",
				InsuranceOptions: defaultInsurance,
			},
		},
		{
			ID: catalogID("665f1a000000000000000005"),
			Details: models.VehicleDetails{
				Name: "SpeedDemon GT", Trim: "Track Pack", Drive: "RWD", Seats: 2,
				PriceRange: [2]int64{5500000, 6500000},
				UseCases:   []string{"Performance", "Weekend", "Luxury", "Solo", "Sport", "Fast"},
				FAndI:      []string{"Tire Insurance"},
				VisualDesc: "Red sports coupe, low profile, spoiler, aggressive front grille",
				ContractTemplate: "<h3>PERFORMANCE VEHICLE WAIVER</h3><p><b>1. PARTIES</b><br>Buyer: {{buyer_name}}</p>" +
					"<p><b>2. TRACK USE</b><br>Manufacturer warranty is VOID if vehicle is used on a competitive race track.</p>",
				InsuranceOptions: defaultInsurance[:1],
			},
		},
		{
			ID: catalogID("665f1a000000000000000006"),
			Details: models.VehicleDetails{
				Name: "WorkHorse 1500", Trim: "Heavy Duty", Drive: "4WD", Seats: 3,
				PriceRange: [2]int64{3500000, 4500000},
				UseCases:   []string{"Work", "Towing", "Off-road", "Cargo", "Truck", "Construction"},
				FAndI:      []string{"Commercial Loan"},
				VisualDesc: "White pickup truck, large bed, towing mirrors, rugged bumper",
				ContractTemplate: "<h3>COMMERCIAL VEHICLE SALE</h3><p><b>1. BUYER:</b> {{buyer_name}}</p>" +
					"<p><b>2. TOWING CAPACITY:</b> Verified at 12,000 lbs. Buyer acknowledges commercial registration requirements.</p>",
				InsuranceOptions: defaultInsurance,
			},
		},
		{
			ID: catalogID("665f1a000000000000000007"),
			Details: models.VehicleDetails{
				Name: "Compacto Z", Trim: "Sport", Drive: "FWD", Seats: 4,
				PriceRange: [2]int64{1200000, 1600000},
				UseCases:   []string{"City Commute", "Budget", "Student", "Solo", "Efficient", "Cheap"},
				FAndI:      []string{"First Time Buyer Program"},
				VisualDesc: "Small yellow hatchback, sporty rims, compact design",
				ContractTemplate: "<h3>STANDARD SALE AGREEMENT</h3><p><b>1. PARTIES</b><br>Buyer: {{buyer_name}}</p>" +
					"<p><b>2. AS-IS SALE</b><br>This economy vehicle is sold with standard state mandated warranties only.</p>",
				InsuranceOptions: defaultInsurance[1:],
			},
		},
		{
			ID: catalogID("665f1a000000000000000008"),
			Details: models.VehicleDetails{
				Name: "VoltStream SUV", Trim: "Long Range", Drive: "AWD", Seats: 7,
				PriceRange: [2]int64{4800000, 5800000},
				UseCases:   []string{"Family", "Eco-Friendly", "Tech-Forward", "Roadtrips", "7 Seater", "Electric"},
				FAndI:      []string{"Tech Lease"},
				VisualDesc: "Silver aerodynamic SUV, flush door handles, panoramic glass roof",
				ContractTemplate: "<h3>DIGITAL SALES CONTRACT</h3><p><b>1. BUYER:</b> {{buyer_name}}</p>" +
					"<p><b>2. SOFTWARE LICENSE</b><br>Vehicle software is licensed, not sold. OTA updates provided for 5 years.</p>",
				InsuranceOptions: defaultInsurance,
			},
		},
	}
}
