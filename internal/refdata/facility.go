package refdata

// FacilityCategory describes one nearby-facility probe. CategoryCode is the
// place-search provider's category group code; when empty the facility is
// found by keyword search instead.
type FacilityCategory struct {
	Name         string
	CategoryCode string
}

// FacilityCategories lists every facility type checked around a candidate
// location, in report order.
var FacilityCategories = []FacilityCategory{
	{Name: "지하철역", CategoryCode: "SW8"},
	{Name: "버스정류장", CategoryCode: ""},
	{Name: "은행", CategoryCode: "BK9"},
	{Name: "주차장", CategoryCode: "PK6"},
	{Name: "병원", CategoryCode: "HP8"},
	{Name: "약국", CategoryCode: "PM9"},
	{Name: "편의점", CategoryCode: "CS2"},
	{Name: "대형마트", CategoryCode: "MT1"},
	{Name: "학교", CategoryCode: "SC4"},
	{Name: "공공기관", CategoryCode: "PO3"},
}

// DensityCategories are the category group codes counted when estimating
// commercial density around a point.
var DensityCategories = []FacilityCategory{
	{Name: "음식점", CategoryCode: "FD6"},
	{Name: "카페", CategoryCode: "CE7"},
	{Name: "편의점", CategoryCode: "CS2"},
	{Name: "대형마트", CategoryCode: "MT1"},
}
