package refdata

import "github.com/haeyanglab/searep/internal/marine"

// Seed data for the demo deployment: five well-known Korean marine leisure
// spots with their restrictions, contacts, and nearby safety zones.

var seedLocations = []marine.Location{
	{
		Name:        "부산 해운대해수욕장",
		Coordinates: marine.Coordinates{Lat: 35.1595, Lng: 129.1604},
		SafetyLevel: marine.SafetyHigh,
	},
	{
		Name:        "제주도 중문해수욕장",
		Coordinates: marine.Coordinates{Lat: 33.2382, Lng: 126.4164},
		SafetyLevel: marine.SafetyHigh,
	},
	{
		Name:            "강원도 속초항",
		Coordinates:     marine.Coordinates{Lat: 38.2070, Lng: 128.5918},
		SafetyLevel:     marine.SafetyMedium,
		FishingRights:   true,
		NavigationRoute: true,
	},
	{
		Name:          "인천 을왕리해수욕장",
		Coordinates:   marine.Coordinates{Lat: 37.4449, Lng: 126.3758},
		SafetyLevel:   marine.SafetyMedium,
		FishingRights: true,
	},
	{
		Name:            "경남 통영 한산도",
		Coordinates:     marine.Coordinates{Lat: 34.8344, Lng: 128.4356},
		SafetyLevel:     marine.SafetyLow,
		FishingRights:   true,
		NavigationRoute: true,
	},
}

var seedFishery = map[string]marine.FisheryInfo{
	"부산 해운대해수욕장": {HasRestriction: false},
	"제주도 중문해수욕장": {HasRestriction: false},
	"강원도 속초항": {
		HasRestriction:  true,
		RestrictionType: "어선 통항로",
		ContactInfo:     "033-639-2765",
	},
	"인천 을왕리해수욕장": {
		HasRestriction:  true,
		RestrictionType: "굴양식장",
		ContactInfo:     "032-899-3423",
	},
	"경남 통영 한산도": {
		HasRestriction:  true,
		RestrictionType: "전복양식장, 멸치어업",
		ContactInfo:     "055-650-4000",
	},
}

// defaultContacts are the nationwide numbers used when a location has no
// dedicated directory entry.
var defaultContacts = marine.EmergencyContacts{
	CoastGuard:         "국번없이 122",
	Rescue:             "119",
	LocalAuthority:     "051-709-4000",
	LocalPolice:        "051-700-5000",
	FishingAssociation: "051-123-4567",
}

var seedContacts = map[string]marine.EmergencyContacts{
	"부산 해운대해수욕장": {
		CoastGuard:         "051-760-2000",
		Rescue:             "119",
		LocalAuthority:     "051-888-1000",
		LocalPolice:        "051-749-3112",
		FishingAssociation: "051-741-2345",
	},
	"제주도 중문해수욕장": {
		CoastGuard:         "064-800-8000",
		Rescue:             "119",
		LocalAuthority:     "064-710-2000",
		LocalPolice:        "064-760-5000",
		FishingAssociation: "064-752-1004",
	},
	"강원도 속초항": {
		CoastGuard:         "033-630-6119",
		Rescue:             "119",
		LocalAuthority:     "033-639-2000",
		LocalPolice:        "033-639-2112",
		FishingAssociation: "033-639-2765",
	},
	"인천 을왕리해수욕장": {
		CoastGuard:         "032-889-6119",
		Rescue:             "119",
		LocalAuthority:     "032-899-2000",
		LocalPolice:        "032-899-3400",
		FishingAssociation: "032-899-3423",
	},
	"경남 통영 한산도": {
		CoastGuard:         "055-640-4119",
		Rescue:             "119",
		LocalAuthority:     "055-650-1000",
		LocalPolice:        "055-650-5000",
		FishingAssociation: "055-650-4000",
	},
}

var seedZones = []marine.SafetyZone{
	{
		ID:   "zone-1",
		Name: "해운대 안전구역",
		Type: marine.ZoneSafe,
		Coordinates: []marine.Coordinates{
			{Lat: 35.1585, Lng: 129.1590},
			{Lat: 35.1605, Lng: 129.1590},
			{Lat: 35.1605, Lng: 129.1620},
			{Lat: 35.1585, Lng: 129.1620},
		},
		SafetyLevel: marine.SafetyHigh,
		Description: "해수욕장 지정 구역으로 안전 관리 시설 완비",
	},
	{
		ID:   "zone-2",
		Name: "항로 주의구역",
		Type: marine.ZoneCaution,
		Coordinates: []marine.Coordinates{
			{Lat: 35.1570, Lng: 129.1630},
			{Lat: 35.1590, Lng: 129.1630},
			{Lat: 35.1590, Lng: 129.1660},
			{Lat: 35.1570, Lng: 129.1660},
		},
		SafetyLevel: marine.SafetyMedium,
		Description: "어선 통항로로 주의 필요",
	},
	{
		ID:   "zone-3",
		Name: "을왕리 굴양식장",
		Type: marine.ZoneFishing,
		Coordinates: []marine.Coordinates{
			{Lat: 37.4430, Lng: 126.3720},
			{Lat: 37.4460, Lng: 126.3720},
			{Lat: 37.4460, Lng: 126.3760},
			{Lat: 37.4430, Lng: 126.3760},
		},
		SafetyLevel: marine.SafetyMedium,
		Description: "굴양식장 구역으로 어업 활동과의 충돌 주의",
	},
	{
		ID:   "zone-4",
		Name: "속초항 항로구역",
		Type: marine.ZoneNavigation,
		Coordinates: []marine.Coordinates{
			{Lat: 38.2040, Lng: 128.5940},
			{Lat: 38.2090, Lng: 128.5940},
			{Lat: 38.2090, Lng: 128.5990},
			{Lat: 38.2040, Lng: 128.5990},
		},
		SafetyLevel: marine.SafetyLow,
		Description: "선박 통행이 잦은 주요 항로",
	},
}
