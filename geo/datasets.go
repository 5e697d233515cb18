package geo

import "viaplan/domain"

// regionCapitals maps comunidades autónomas (and the two ciudades autónomas)
// to their capital city as used for trip planning.
var regionCapitals = map[string]string{
	"andalucia":            "Sevilla",
	"aragon":               "Zaragoza",
	"asturias":             "Oviedo",
	"islas baleares":       "Palma",
	"baleares":             "Palma",
	"canarias":             "Las Palmas",
	"cantabria":            "Santander",
	"castilla-la mancha":   "Toledo",
	"castilla la mancha":   "Toledo",
	"castilla y leon":      "Valladolid",
	"cataluna":             "Barcelona",
	"catalunya":            "Barcelona",
	"comunidad valenciana": "Valencia",
	"extremadura":          "Merida",
	"galicia":              "Santiago de Compostela",
	"la rioja":             "Logrono",
	"comunidad de madrid":  "Madrid",
	"region de murcia":     "Murcia",
	"navarra":              "Pamplona",
	"pais vasco":           "Vitoria-Gasteiz",
	"euskadi":              "Vitoria-Gasteiz",
	"ceuta":                "Ceuta",
	"melilla":              "Melilla",
}

// preferredByCity pins the airports a local would actually fly from, for
// cities where the raw dataset match is ambiguous or missing.
var preferredByCity = map[string][]string{
	"madrid":                 {"MAD"},
	"barcelona":              {"BCN"},
	"valencia":               {"VLC"},
	"sevilla":                {"SVQ"},
	"malaga":                 {"AGP"},
	"bilbao":                 {"BIO"},
	"palma":                  {"PMI"},
	"santiago de compostela": {"SCQ"},
	"vitoria-gasteiz":        {"BIO"},
	"vitoria":                {"BIO"},

	// cities without their own airport, or with a small one nearby
	"pamplona":  {"PNA", "BIO"},
	"zaragoza":  {"ZAZ", "PNA"},
	"logrono":   {"RJL", "BIO"},
	"toledo":    {"MAD"},
	"merida":    {"BJZ"},
	"oviedo":    {"OVD"},
	"santander": {"SDR"},

	"santa cruz de tenerife": {"TFN", "TFS"},
	"granadilla de abona":    {"TFS", "TFN"},
	"las palmas":             {"LPA"},

	// users sometimes type the region where the city goes
	"navarra":    {"PNA", "BIO"},
	"pais vasco": {"BIO"},
	"galicia":    {"SCQ"},
	"andalucia":  {"SVQ", "AGP"},
}

// airports is the Spanish airport reference dataset.
var airports = []domain.Airport{
	{IATA: "MAD", Name: "Adolfo Suárez Madrid-Barajas", City: "Madrid", Lat: 40.4936, Lon: -3.5668},
	{IATA: "BCN", Name: "Josep Tarradellas Barcelona-El Prat", City: "Barcelona", Lat: 41.2971, Lon: 2.0785},
	{IATA: "VLC", Name: "Valencia", City: "Valencia", Lat: 39.4893, Lon: -0.4816},
	{IATA: "SVQ", Name: "Sevilla", City: "Sevilla", Lat: 37.4180, Lon: -5.8931},
	{IATA: "AGP", Name: "Málaga-Costa del Sol", City: "Malaga", Lat: 36.6749, Lon: -4.4991},
	{IATA: "BIO", Name: "Bilbao", City: "Bilbao", Lat: 43.3011, Lon: -2.9106},
	{IATA: "ALC", Name: "Alicante-Elche Miguel Hernández", City: "Alicante", Lat: 38.2822, Lon: -0.5582},
	{IATA: "PMI", Name: "Palma de Mallorca", City: "Palma", Lat: 39.5517, Lon: 2.7388},
	{IATA: "SCQ", Name: "Santiago-Rosalía de Castro", City: "Santiago de Compostela", Lat: 42.8963, Lon: -8.4151},
	{IATA: "PNA", Name: "Pamplona", City: "Pamplona", Lat: 42.7700, Lon: -1.6463},
	{IATA: "ZAZ", Name: "Zaragoza", City: "Zaragoza", Lat: 41.6662, Lon: -1.0416},
	{IATA: "RJL", Name: "Logroño-Agoncillo", City: "Logrono", Lat: 42.4610, Lon: -2.3223},
	{IATA: "OVD", Name: "Asturias", City: "Oviedo", Lat: 43.5636, Lon: -6.0346},
	{IATA: "SDR", Name: "Seve Ballesteros-Santander", City: "Santander", Lat: 43.4271, Lon: -3.8200},
	{IATA: "VLL", Name: "Valladolid", City: "Valladolid", Lat: 41.7061, Lon: -4.8520},
	{IATA: "BJZ", Name: "Badajoz", City: "Badajoz", Lat: 38.8913, Lon: -6.8213},
	{IATA: "VGO", Name: "Vigo-Peinador", City: "Vigo", Lat: 42.2318, Lon: -8.6268},
	{IATA: "LCG", Name: "A Coruña", City: "A Coruna", Lat: 43.3021, Lon: -8.3772},
	{IATA: "EAS", Name: "San Sebastián", City: "San Sebastian", Lat: 43.3565, Lon: -1.7906},
	{IATA: "GRX", Name: "Federico García Lorca Granada-Jaén", City: "Granada", Lat: 37.1887, Lon: -3.7774},
	{IATA: "XRY", Name: "Jerez", City: "Jerez de la Frontera", Lat: 36.7446, Lon: -6.0601},
	{IATA: "LEI", Name: "Almería", City: "Almeria", Lat: 36.8439, Lon: -2.3701},
	{IATA: "RMU", Name: "Región de Murcia", City: "Murcia", Lat: 37.8030, Lon: -1.1250},
	{IATA: "IBZ", Name: "Ibiza", City: "Ibiza", Lat: 38.8729, Lon: 1.3731},
	{IATA: "MAH", Name: "Menorca", City: "Mahon", Lat: 39.8626, Lon: 4.2186},
	{IATA: "LPA", Name: "Gran Canaria", City: "Las Palmas", Lat: 27.9319, Lon: -15.3866},
	{IATA: "TFN", Name: "Tenerife Norte-Ciudad de La Laguna", City: "Santa Cruz de Tenerife", Lat: 28.4827, Lon: -16.3415},
	{IATA: "TFS", Name: "Tenerife Sur", City: "Granadilla de Abona", Lat: 28.0445, Lon: -16.5725},
	{IATA: "ACE", Name: "César Manrique-Lanzarote", City: "Arrecife", Lat: 28.9455, Lon: -13.6052},
	{IATA: "FUE", Name: "Fuerteventura", City: "Puerto del Rosario", Lat: 28.4527, Lon: -13.8638},
	{IATA: "SPC", Name: "La Palma", City: "Santa Cruz de La Palma", Lat: 28.6265, Lon: -17.7556},
	{IATA: "MLN", Name: "Melilla", City: "Melilla", Lat: 35.2798, Lon: -2.9563},
	{IATA: "GRO", Name: "Girona-Costa Brava", City: "Girona", Lat: 41.9010, Lon: 2.7606},
	{IATA: "REU", Name: "Reus", City: "Reus", Lat: 41.1474, Lon: 1.1672},
}
