package prompt

import (
	"fmt"
	"strings"
)

// codeEntry is one code/label row in a lookup table
type codeEntry struct {
	Code        string
	Description string
}

// MainSubdoctypes are the five top-level procurement vehicle types
var MainSubdoctypes = []string{
	"awards",
	"solicitations",
	"requisitions",
	"funding opportunities",
	"assistance agreements/grants",
}

// AwardSubtypes are the recognized sub-types of the "awards" vehicle
var AwardSubtypes = []string{
	"Contract",
	"Delivery/Task Order",
	"TDD",
	"Work Assignment",
	"Other Transaction",
	"BPA",
	"BPA call",
	"IAA",
	"Purchase Order",
	"Purchase Card Order",
	"Multiple Award Setup",
	"OT Delivery/Task Order",
}

// setAsideEntry is one row of the set-aside code lookup table
type setAsideEntry struct {
	Code        string
	Description string
	Aliases     string
}

// SetAsideCodes maps federal set-aside codes to descriptions and common aliases
var SetAsideCodes = []setAsideEntry{
	{"A", "N/A", "None, No set aside used"},
	{"B", "Total HBCU / MI", "HMT, Historically Black College/University or Minority Institution"},
	{"C", "Total Small Business", "SBA"},
	{"E", "HUBZone", "HZC, Historically Underutilized Business"},
	{"G", "Partial HBCU / MI", "HMP, Historically Black College/University or Minority Institution"},
	{"H", "Partial Small Business", "SBP"},
	{"N", "Service-Disabled Veteran-Owned Small Business", "SDVOSB"},
	{"O", "Competitive 8(a)", "8A"},
	{"F", "Woman Owned Small Business", "WOSB"},
	{"M", "Veteran-Owned Small Business", "VOSB"},
	{"P", "Economically Disadvantaged Woman Owned Small Business", "EDWOSB"},
	{"Q", "Emerging Small Business", "ESB"},
}

// naicsSector is one NAICS level-1 sector with its level-2 subsectors
type naicsSector struct {
	Code        string
	Description string
	Subsectors  []codeEntry
}

// NAICSSectors is the level-1/level-2 NAICS lookup table rendered into the
// system instruction
var NAICSSectors = []naicsSector{
	{"11", "Agriculture, Forestry, Fishing and Hunting", []codeEntry{
		{"111", "Crop Production"},
		{"112", "Animal Production and Aquaculture"},
		{"113", "Forestry and Logging"},
		{"114", "Fishing, Hunting and Trapping"},
		{"115", "Support Activities for Agriculture and Forestry"},
	}},
	{"21", "Mining, Quarrying, and Oil and Gas Extraction", []codeEntry{
		{"211", "Oil and Gas Extraction"},
		{"212", "Mining (except Oil and Gas)"},
		{"213", "Support Activities for Mining"},
	}},
	{"22", "Utilities", []codeEntry{
		{"221", "Utilities"},
	}},
	{"23", "Construction", []codeEntry{
		{"236", "Construction of Buildings"},
		{"237", "Heavy and Civil Engineering Construction"},
		{"238", "Specialty Trade Contractors"},
	}},
	{"31-33", "Manufacturing", []codeEntry{
		{"311", "Food Manufacturing"},
		{"312", "Beverage and Tobacco Product Manufacturing"},
		{"313", "Textile Mills"},
		{"314", "Textile Product Mills"},
		{"315", "Apparel Manufacturing"},
		{"316", "Leather and Allied Product Manufacturing"},
		{"321", "Wood Product Manufacturing"},
		{"322", "Paper Manufacturing"},
		{"323", "Printing and Related Support Activities"},
		{"324", "Petroleum and Coal Products Manufacturing"},
		{"325", "Chemical Manufacturing"},
		{"326", "Plastics and Rubber Products Manufacturing"},
		{"327", "Nonmetallic Mineral Product Manufacturing"},
		{"331", "Primary Metal Manufacturing"},
		{"332", "Fabricated Metal Product Manufacturing"},
		{"333", "Machinery Manufacturing"},
		{"334", "Computer and Electronic Product Manufacturing"},
		{"335", "Electrical Equipment, Appliance, and Component Manufacturing"},
		{"336", "Transportation Equipment Manufacturing"},
		{"337", "Furniture and Related Product Manufacturing"},
		{"339", "Miscellaneous Manufacturing"},
	}},
	{"42", "Wholesale Trade", []codeEntry{
		{"423", "Merchant Wholesalers, Durable Goods"},
		{"424", "Merchant Wholesalers, Nondurable Goods"},
		{"425", "Wholesale Electronic Markets and Agents and Brokers"},
	}},
	{"44-45", "Retail Trade", []codeEntry{
		{"441", "Motor Vehicle and Parts Dealers"},
		{"442", "Furniture and Home Furnishings Stores"},
		{"443", "Electronics and Appliance Stores"},
		{"444", "Building Material and Garden Equipment and Supplies Dealers"},
		{"445", "Food and Beverage Stores"},
		{"446", "Health and Personal Care Stores"},
		{"447", "Gasoline Stations"},
		{"448", "Clothing and Clothing Accessories Stores"},
		{"451", "Sporting Goods, Hobby, Book, and Music Stores"},
		{"452", "General Merchandise Stores"},
		{"453", "Miscellaneous Store Retailers"},
		{"454", "Nonstore Retailers"},
	}},
	{"48-49", "Transportation and Warehousing", []codeEntry{
		{"481", "Air Transportation"},
		{"482", "Rail Transportation"},
		{"483", "Water Transportation"},
		{"484", "Truck Transportation"},
		{"485", "Transit and Ground Passenger Transportation"},
		{"486", "Pipeline Transportation"},
		{"487", "Scenic and Sightseeing Transportation"},
		{"488", "Support Activities for Transportation"},
		{"491", "Postal Service"},
		{"492", "Couriers and Messengers"},
		{"493", "Warehousing and Storage"},
	}},
	{"51", "Information", []codeEntry{
		{"511", "Publishing Industries (except Internet)"},
		{"512", "Motion Picture and Sound Recording Industries"},
		{"515", "Broadcasting (except Internet)"},
		{"517", "Telecommunications"},
		{"518", "Data Processing, Hosting, and Related Services"},
		{"519", "Other Information Services"},
	}},
	{"52", "Finance and Insurance", []codeEntry{
		{"521", "Monetary Authorities-Central Bank"},
		{"522", "Credit Intermediation and Related Activities"},
		{"523", "Securities, Commodity Contracts, and Other Financial Investments"},
		{"524", "Insurance Carriers and Related Activities"},
		{"525", "Funds, Trusts, and Other Financial Vehicles"},
	}},
	{"53", "Real Estate and Rental and Leasing", []codeEntry{
		{"531", "Real Estate"},
		{"532", "Rental and Leasing Services"},
		{"533", "Lessors of Nonfinancial Intangible Assets"},
	}},
	{"54", "Professional, Scientific, and Technical Services", []codeEntry{
		{"541", "Professional, Scientific, and Technical Services"},
	}},
	{"55", "Management of Companies and Enterprises", []codeEntry{
		{"551", "Management of Companies and Enterprises"},
	}},
	{"56", "Administrative and Support and Waste Management and Remediation Services", []codeEntry{
		{"561", "Administrative and Support Services"},
		{"562", "Waste Management and Remediation Services"},
	}},
	{"61", "Educational Services", []codeEntry{
		{"611", "Educational Services"},
	}},
	{"62", "Health Care and Social Assistance", []codeEntry{
		{"621", "Ambulatory Health Care Services"},
		{"622", "Hospitals"},
		{"623", "Nursing and Residential Care Facilities"},
		{"624", "Social Assistance"},
	}},
	{"71", "Arts, Entertainment, and Recreation", []codeEntry{
		{"711", "Performing Arts, Spectator Sports, and Related Industries"},
		{"712", "Museums, Historical Sites, and Similar Institutions"},
		{"713", "Amusement, Gambling, and Recreation Industries"},
	}},
	{"72", "Accommodation and Food Services", []codeEntry{
		{"721", "Accommodation"},
		{"722", "Food Services and Drinking Places"},
	}},
	{"81", "Other Services (except Public Administration)", []codeEntry{
		{"811", "Repair and Maintenance"},
		{"812", "Personal and Laundry Services"},
		{"813", "Religious, Grantmaking, Civic, Professional, and Similar Organizations"},
		{"814", "Private Households"},
	}},
	{"92", "Public Administration", []codeEntry{
		{"921", "Executive, Legislative, and Other General Government Support"},
		{"922", "Justice, Public Order, and Safety Activities"},
		{"923", "Administration of Human Resource Programs"},
		{"924", "Administration of Environmental Quality Programs"},
		{"925", "Administration of Housing Programs, Urban Planning, and Community Development"},
		{"926", "Administration of Economic Programs"},
		{"927", "Space Research and Technology"},
		{"928", "National Security and International Affairs"},
	}},
}

// pscServiceGroup is one PSC level-1 service letter with its level-2 entries
type pscServiceGroup struct {
	Code        string
	Description string
	Subgroups   []codeEntry
}

// PSCServiceGroups is the PSC service (letter) lookup table
var PSCServiceGroups = []pscServiceGroup{
	{"A", "Research and Development (R&D)", []codeEntry{
		{"AA-AZ", "Basic Research"},
		{"AB-AZ", "Applied Research"},
		{"AC-AZ", "Advanced Development"},
		{"AD-AZ", "Operational Systems Development"},
		{"AJ-AZ", "Management/Support R&D"},
	}},
	{"B", "Special Studies or Analyses - Not R&D", []codeEntry{
		{"B5", "Special Studies/Analyses"},
	}},
	{"C", "Architect and Engineering Services", []codeEntry{
		{"C1", "Architect and Engineering Services for Construction"},
		{"C2", "Architect and Engineering Services for General (Other than Construction)"},
	}},
	{"D", "IT and Telecom Services", []codeEntry{
		{"DA-DJ", "Various IT Services (cloud, cybersecurity, data center, etc.)"},
		{"D3**", "Legacy IT Services"},
	}},
	{"E", "Purchase of Structures and Facilities", nil},
	{"F", "Natural Resources and Conservation Services", nil},
	{"G", "Social Services", nil},
	{"H", "Quality Control, Testing, and Inspection Services", nil},
	{"J", "Maintenance, Repair, and Rebuilding of Equipment", nil},
	{"K", "Modification of Equipment", nil},
	{"L", "Technical Representative Services", nil},
	{"M", "Operation of Government-Owned Facilities", nil},
	{"N", "Installation of Equipment", nil},
	{"P", "Salvage Services", nil},
	{"Q", "Medical Services", []codeEntry{
		{"Q1**", "Health Care Services"},
		{"Q2**", "Medical/Surgical"},
		{"Q4**", "Dental"},
		{"Q5**", "Veterinary/Animal"},
		{"Q9**", "Other Medical Services"},
	}},
	{"R", "Support Services (Professional, Administrative, Management)", []codeEntry{
		{"R1**", "Professional Services"},
		{"R2**", "Administrative Support"},
		{"R3**", "Logistics Support"},
		{"R4**", "Engineering/Technical Services"},
		{"R5**", "Intelligence/Operations Support"},
		{"R6**", "Records Management, Physical/Electronic"},
		{"R7**", "Management Support Services"},
		{"R9**", "Miscellaneous Support"},
	}},
	{"S", "Utilities and Housekeeping Services", []codeEntry{
		{"S1**", "Utilities (electric, gas, water)"},
		{"S2**", "Housekeeping (janitorial, landscaping, pest control)"},
	}},
	{"T", "Photographic, Mapping, Printing, and Publication Services", nil},
	{"U", "Education and Training Services", nil},
	{"V", "Transportation, Travel, and Relocation Services", []codeEntry{
		{"V1**", "Transportation of People"},
		{"V2**", "Transportation of Things"},
		{"V3**", "Relocation Services"},
	}},
	{"W", "Lease/Rental of Equipment", nil},
	{"X", "Lease/Rental of Structures and Facilities", nil},
	{"Y", "Construction of Structures and Facilities", nil},
	{"Z", "Maintenance, Repair or Alteration of Real Property", []codeEntry{
		{"Z1**", "Buildings and Structures"},
		{"Z2**", "Other Real Property (highways, dams, etc.)"},
	}},
}

// PSCProductGroups is the PSC product (numeric FSC group) lookup table
var PSCProductGroups = []codeEntry{
	{"10", "Weapons"},
	{"11", "Nuclear Ordnance"},
	{"12", "Fire Control Equipment"},
	{"13", "Ammunition and Explosives"},
	{"14", "Guided Missiles"},
	{"15", "Aerospace Craft and Components"},
	{"16", "Aircraft Components and Accessories"},
	{"17", "Aircraft Launching/Landing Equipment"},
	{"18", "Space Vehicles"},
	{"19", "Ships, Small Craft, Pontoons, Floating Docks"},
	{"20", "Ship and Marine Equipment"},
	{"22", "Railway Equipment"},
	{"23", "Ground Vehicles, Motor Vehicles"},
	{"24", "Tractors"},
	{"25", "Vehicular Equipment Components"},
	{"26", "Tires and Tubes"},
	{"28", "Engines, Turbines, Components"},
	{"29", "Engine Accessories"},
	{"30", "Mechanical Power Transmission Equipment"},
	{"31", "Bearings"},
	{"32", "Woodworking Machinery"},
	{"34", "Metalworking Machinery"},
	{"35", "Service and Trade Equipment"},
	{"36", "Special Industry Machinery"},
	{"37", "Agricultural Machinery"},
	{"38", "Construction/Mining Equipment"},
	{"39", "Materials Handling Equipment"},
	{"40", "Rope, Cable, Chain, Fittings"},
	{"41", "Refrigeration, A/C Equipment"},
	{"42", "Fire Fighting/Rescue Equipment"},
	{"43", "Pumps and Compressors"},
	{"44", "Furnace/Steam Plant/Drying Equipment"},
	{"45", "Plumbing, Heating, Waste Disposal"},
	{"46", "Water Purification and Sewage Equipment"},
	{"47", "Pipe, Tubing, Hose, Fittings"},
	{"48", "Valves"},
	{"49", "Maintenance and Repair Shop Equipment"},
	{"51", "Hand Tools"},
	{"52", "Measuring Tools"},
	{"53", "Hardware and Abrasives"},
	{"54", "Prefabricated Structures"},
	{"55", "Lumber, Millwork, Plywood"},
	{"56", "Construction and Building Materials"},
	{"58", "Communication, Detection, Coherent Radiation Equipment"},
	{"59", "Electrical and Electronic Equipment Components"},
	{"60", "Fiber Optics Materials"},
	{"61", "Electric Wire and Power Distribution"},
	{"62", "Lighting Fixtures and Lamps"},
	{"63", "Alarm, Signal, Security Detection Systems"},
	{"65", "Medical, Dental, Veterinary Equipment"},
	{"66", "Instruments and Laboratory Equipment"},
	{"67", "Photographic Equipment"},
	{"68", "Chemicals and Chemical Products"},
	{"69", "Training Aids and Devices"},
	{"70", "ADP Equipment, Software, Supplies (legacy - mostly replaced by D)"},
	{"71", "Furniture"},
	{"72", "Household/Commercial Furnishings"},
	{"73", "Food Preparation and Serving Equipment"},
	{"74", "Office Machines, Text Processing"},
	{"75", "Office Supplies and Devices"},
	{"76", "Books, Maps, Publications"},
	{"77", "Musical Instruments/Phonographs"},
	{"78", "Recreational/Athletic Equipment"},
	{"79", "Cleaning Equipment and Supplies"},
	{"80", "Brushes, Paints, Sealers"},
	{"81", "Containers, Packaging"},
	{"83", "Textiles, Leather, Furs, Apparel"},
	{"84", "Clothing, Individual Equipment"},
	{"85", "Toiletries"},
	{"87", "Agricultural Supplies"},
	{"88", "Live Animals"},
	{"89", "Subsistence (Food)"},
	{"91", "Fuels, Lubricants, Oils"},
	{"93", "Nonmetallic Fabricated Materials"},
	{"94", "Nonmetallic Crude Materials"},
	{"95", "Metal Bars, Sheets, Shapes"},
	{"96", "Ores, Minerals"},
	{"99", "Miscellaneous"},
}

func renderNAICSTable() string {
	var b strings.Builder
	for i, sector := range NAICSSectors {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s - %s\n", sector.Code, sector.Description)
		for _, sub := range sector.Subsectors {
			fmt.Fprintf(&b, "    %s - %s\n", sub.Code, sub.Description)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderPSCServiceTable() string {
	var b strings.Builder
	for i, group := range PSCServiceGroups {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s - %s\n", group.Code, group.Description)
		for _, sub := range group.Subgroups {
			fmt.Fprintf(&b, "    %s - %s\n", sub.Code, sub.Description)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderPSCProductTable() string {
	var b strings.Builder
	for _, entry := range PSCProductGroups {
		fmt.Fprintf(&b, "%s - %s\n", entry.Code, entry.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSetAsideTable() string {
	var b strings.Builder
	for _, entry := range SetAsideCodes {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", entry.Code, entry.Description, entry.Aliases)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderMainSubdoctypes() string {
	var b strings.Builder
	for i, t := range MainSubdoctypes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderAwardSubtypes() string {
	var b strings.Builder
	for _, t := range AwardSubtypes {
		fmt.Fprintf(&b, "- %s\n", t)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderAwardSubtypeValues renders the subtype list as quoted JSON values,
// with any extra values appended
func renderAwardSubtypeValues(extra ...string) string {
	all := append(append([]string{}, AwardSubtypes...), extra...)
	quoted := make([]string, len(all))
	for i, v := range all {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
