package geo

import "strings"

type districtEntry struct {
	name    string
	aliases []string
}

type stateEntry struct {
	name      string
	aliases   []string
	districts []districtEntry
}

// gazetteer covers the states the platform operates in. District aliases hold
// the common city names customers actually type.
var gazetteer = []stateEntry{
	{
		name: "Karnataka",
		districts: []districtEntry{
			{name: "Bengaluru Urban", aliases: []string{"bangalore", "bengaluru"}},
			{name: "Mysuru", aliases: []string{"mysore"}},
			{name: "Mangaluru", aliases: []string{"mangalore", "dakshina kannada"}},
		},
	},
	{
		name: "Maharashtra",
		districts: []districtEntry{
			{name: "Mumbai", aliases: []string{"bombay", "mumbai suburban"}},
			{name: "Pune"},
			{name: "Nagpur"},
		},
	},
	{
		name:    "Delhi",
		aliases: []string{"new delhi", "nct of delhi"},
		districts: []districtEntry{
			{name: "New Delhi"},
			{name: "South Delhi"},
		},
	},
	{
		name: "Tamil Nadu",
		districts: []districtEntry{
			{name: "Chennai", aliases: []string{"madras"}},
			{name: "Coimbatore"},
			{name: "Madurai"},
		},
	},
	{
		name: "Kerala",
		districts: []districtEntry{
			{name: "Ernakulam", aliases: []string{"kochi", "cochin"}},
			{name: "Thiruvananthapuram", aliases: []string{"trivandrum"}},
			{name: "Kozhikode", aliases: []string{"calicut"}},
		},
	},
	{
		name: "Telangana",
		districts: []districtEntry{
			{name: "Hyderabad"},
			{name: "Warangal"},
		},
	},
	{
		name: "West Bengal",
		districts: []districtEntry{
			{name: "Kolkata", aliases: []string{"calcutta"}},
			{name: "Howrah"},
		},
	},
	{
		name: "Gujarat",
		districts: []districtEntry{
			{name: "Ahmedabad"},
			{name: "Surat"},
			{name: "Vadodara", aliases: []string{"baroda"}},
		},
	},
	{
		name: "Rajasthan",
		districts: []districtEntry{
			{name: "Jaipur"},
			{name: "Jodhpur"},
			{name: "Udaipur"},
		},
	},
	{
		name: "Uttar Pradesh",
		districts: []districtEntry{
			{name: "Lucknow"},
			{name: "Varanasi", aliases: []string{"banaras"}},
			{name: "Gautam Buddha Nagar", aliases: []string{"noida"}},
			{name: "Kanpur Nagar", aliases: []string{"kanpur"}},
		},
	},
	{
		name: "Punjab",
		districts: []districtEntry{
			{name: "Amritsar"},
			{name: "Ludhiana"},
		},
	},
	{
		name: "Haryana",
		districts: []districtEntry{
			{name: "Gurugram", aliases: []string{"gurgaon"}},
			{name: "Faridabad"},
		},
	},
	{
		name: "Bihar",
		districts: []districtEntry{
			{name: "Patna"},
			{name: "Gaya"},
		},
	},
	{
		name: "Madhya Pradesh",
		districts: []districtEntry{
			{name: "Bhopal"},
			{name: "Indore"},
		},
	},
	{
		name: "Andhra Pradesh",
		districts: []districtEntry{
			{name: "Visakhapatnam", aliases: []string{"vizag"}},
			{name: "Vijayawada", aliases: []string{"ntr"}},
		},
	},
}

// MatchAddress scans a free-text address for a known state or district.
// District matches win because they also pin down the state. Returns the zero
// Region when nothing matches.
func MatchAddress(address string) Region {
	haystack := strings.ToLower(address)
	if haystack == "" {
		return Region{}
	}

	for _, st := range gazetteer {
		for _, d := range st.districts {
			if containsAny(haystack, d.name, d.aliases) {
				return Region{State: st.name, District: d.name}
			}
		}
	}

	for _, st := range gazetteer {
		if containsAny(haystack, st.name, st.aliases) {
			return Region{State: st.name}
		}
	}

	return Region{}
}

// CanonicalState maps a geocoder-reported state name onto the gazetteer
// spelling, so stored jurisdictions and admin directory rows compare equal.
// Unknown names pass through unchanged.
func CanonicalState(name string) string {
	if name == "" {
		return ""
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, st := range gazetteer {
		if strings.ToLower(st.name) == needle {
			return st.name
		}
		for _, alias := range st.aliases {
			if alias == needle {
				return st.name
			}
		}
	}
	return name
}

func containsAny(haystack, name string, aliases []string) bool {
	if strings.Contains(haystack, strings.ToLower(name)) {
		return true
	}
	for _, alias := range aliases {
		if strings.Contains(haystack, alias) {
			return true
		}
	}
	return false
}
