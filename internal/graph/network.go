package graph

import "github.com/ecomarine/ecaroute/internal/core/model"

// Passage tags. These are the labels a route request may restrict.
const (
	PassageSuez        = "suez"
	PassagePanama      = "panama"
	PassageGibraltar   = "gibraltar"
	PassageOrmuz       = "ormuz"
	PassageNorthwest   = "northwest"
	PassageBabAlMandab = "babalmandab"
	PassageBosporus    = "bosporus"
	PassageChili       = "chili"
)

// KnownPassages lists every restrictable passage tag, in documentation order.
var KnownPassages = []string{
	PassageSuez, PassagePanama, PassageGibraltar, PassageOrmuz,
	PassageNorthwest, PassageBabAlMandab, PassageBosporus, PassageChili,
}

func node(id string, lat, lon float64) Node {
	return Node{ID: id, Coord: model.Coordinate{Lat: lat, Lon: lon}}
}

// Network returns the built-in global sea-lane network. It is a coarse
// abstraction of the major shipping corridors: enough fidelity for
// nautical-mile-scale cost estimation, nowhere near enough for navigation.
func Network() ([]Node, []Link) {
	nodes := []Node{
		// North Sea and Baltic
		node("rotterdam-maas", 51.98, 3.95),
		node("dover-strait", 51.05, 1.40),
		node("channel-west", 49.60, -5.30),
		node("north-sea-central", 56.50, 3.00),
		node("skagerrak", 57.80, 9.00),
		node("oresund", 55.60, 12.70),
		node("baltic-south", 55.20, 16.00),
		node("baltic-central", 57.80, 19.50),
		node("gulf-of-finland", 59.60, 24.00),

		// Iberia and western Mediterranean
		node("biscay", 45.50, -6.80),
		node("finisterre", 43.20, -9.60),
		node("lisbon-offing", 38.60, -9.90),
		node("cape-st-vincent", 36.90, -9.20),
		node("gibraltar-west", 35.95, -6.50),
		node("gibraltar-east", 36.10, -4.40),
		node("sardinia-south", 38.20, 8.30),
		node("sicily-strait", 37.20, 11.40),
		node("malta-east", 35.60, 16.00),
		node("crete-south", 34.40, 24.60),
		node("aegean-south", 35.80, 26.50),
		node("dardanelles", 40.00, 26.10),
		node("bosporus", 41.15, 29.10),
		node("black-sea-west", 42.60, 31.00),
		node("port-said", 31.30, 32.35),
		node("suez-south", 29.90, 32.55),

		// Red Sea, Gulf, Indian Ocean
		node("red-sea-central", 19.80, 38.60),
		node("bab-el-mandeb", 12.55, 43.40),
		node("gulf-of-aden", 12.60, 48.00),
		node("socotra", 12.20, 54.30),
		node("arabian-sea", 15.00, 62.00),
		node("gulf-of-oman", 24.80, 58.00),
		node("hormuz", 26.40, 56.50),
		node("persian-gulf", 26.80, 52.00),
		node("dondra-head", 5.60, 80.60),
		node("malacca-north", 6.20, 96.80),
		node("malacca-strait", 3.60, 99.80),
		node("singapore-strait", 1.20, 103.80),

		// Southern route around Africa
		node("sumatra-west", -5.50, 95.00),
		node("indian-south", -24.00, 74.00),
		node("madagascar-south", -27.50, 45.50),
		node("agulhas", -35.50, 20.00),
		node("walvis-offing", -23.00, 12.50),
		node("gulf-of-guinea", 0.00, 4.00),
		node("dakar-offing", 14.60, -17.80),
		node("canary", 27.80, -15.80),

		// North Atlantic
		node("azores", 38.20, -27.00),
		node("mid-atlantic-north", 47.50, -25.00),
		node("atlantic-west", 43.00, -50.00),
		node("halifax-offing", 43.50, -62.00),
		node("new-york-approach", 40.40, -73.60),
		node("chesapeake", 36.90, -74.80),
		node("florida-strait", 24.50, -80.00),

		// Caribbean and Gulf of Mexico
		node("yucatan-channel", 21.50, -85.50),
		node("gulf-of-mexico", 25.50, -90.00),
		node("caribbean-central", 15.00, -75.00),
		node("puerto-rico-north", 18.60, -65.80),
		node("colon", 9.40, -79.90),
		node("balboa", 8.90, -79.55),

		// South America
		node("recife-offing", -8.00, -34.00),
		node("rio-offing", -25.00, -44.00),
		node("la-plata", -36.00, -55.00),
		node("cape-horn", -56.50, -67.00),
		node("valparaiso-offing", -33.00, -72.50),
		node("callao-offing", -12.00, -78.50),
		node("mexico-pacific", 16.00, -100.00),

		// Pacific
		node("san-pedro", 33.60, -118.60),
		node("san-francisco-offing", 37.60, -123.00),
		node("juan-de-fuca", 48.40, -125.20),
		node("gulf-of-alaska", 55.00, -140.00),
		node("unimak-pass", 54.30, -165.00),
		node("bering-sea", 58.50, -175.00),
		node("bering-strait", 65.70, -168.40),
		node("pacific-ne", 40.00, -150.00),
		node("hawaii-north", 22.50, -157.00),
		node("pacific-dateline", 43.00, 179.50),
		node("pacific-nw", 40.50, 160.00),
		node("tokyo-offing", 34.60, 140.20),
		node("luzon-strait", 20.60, 121.40),
		node("south-china-sea", 8.00, 110.50),
		node("equator-pacific-west", 0.00, 179.20),
		node("equator-pacific-east", 0.00, -178.00),

		// Arctic
		node("davis-strait", 66.00, -57.50),
		node("lancaster-sound", 74.20, -84.00),
		node("canadian-arctic", 74.50, -110.00),
		node("beaufort", 71.80, -140.00),
	}

	links := []Link{
		// North Sea and Baltic
		{A: "rotterdam-maas", B: "dover-strait"},
		{A: "rotterdam-maas", B: "north-sea-central"},
		{A: "dover-strait", B: "channel-west"},
		{A: "north-sea-central", B: "skagerrak"},
		{A: "skagerrak", B: "oresund"},
		{A: "oresund", B: "baltic-south"},
		{A: "baltic-south", B: "baltic-central"},
		{A: "baltic-central", B: "gulf-of-finland"},

		// Western Europe to Gibraltar
		{A: "channel-west", B: "biscay"},
		{A: "biscay", B: "finisterre"},
		{A: "finisterre", B: "lisbon-offing"},
		{A: "lisbon-offing", B: "cape-st-vincent"},
		{A: "cape-st-vincent", B: "gibraltar-west"},
		{A: "gibraltar-west", B: "gibraltar-east", Passage: PassageGibraltar},

		// Mediterranean and Black Sea
		{A: "gibraltar-east", B: "sardinia-south"},
		{A: "sardinia-south", B: "sicily-strait"},
		{A: "sicily-strait", B: "malta-east"},
		{A: "malta-east", B: "crete-south"},
		{A: "crete-south", B: "aegean-south"},
		{A: "aegean-south", B: "dardanelles"},
		{A: "dardanelles", B: "bosporus", Passage: PassageBosporus},
		{A: "bosporus", B: "black-sea-west"},
		{A: "crete-south", B: "port-said"},

		// Suez, Red Sea, Gulf
		{A: "port-said", B: "suez-south", Passage: PassageSuez},
		{A: "suez-south", B: "red-sea-central"},
		{A: "red-sea-central", B: "bab-el-mandeb", Passage: PassageBabAlMandab},
		{A: "bab-el-mandeb", B: "gulf-of-aden"},
		{A: "gulf-of-aden", B: "socotra"},
		{A: "socotra", B: "arabian-sea"},
		{A: "arabian-sea", B: "gulf-of-oman"},
		{A: "gulf-of-oman", B: "hormuz", Passage: PassageOrmuz},
		{A: "hormuz", B: "persian-gulf", Passage: PassageOrmuz},

		// Indian Ocean to South East Asia
		{A: "arabian-sea", B: "dondra-head"},
		{A: "dondra-head", B: "malacca-north"},
		{A: "malacca-north", B: "malacca-strait"},
		{A: "malacca-strait", B: "singapore-strait"},

		// East Asia and trans-Pacific
		{A: "singapore-strait", B: "south-china-sea"},
		{A: "south-china-sea", B: "luzon-strait"},
		{A: "luzon-strait", B: "tokyo-offing"},
		{A: "tokyo-offing", B: "pacific-nw"},
		{A: "pacific-nw", B: "pacific-dateline"},
		{A: "pacific-dateline", B: "pacific-ne"},
		{A: "pacific-ne", B: "san-francisco-offing"},
		{A: "pacific-ne", B: "hawaii-north"},
		{A: "san-francisco-offing", B: "san-pedro"},
		{A: "san-francisco-offing", B: "juan-de-fuca"},
		{A: "juan-de-fuca", B: "gulf-of-alaska"},
		{A: "gulf-of-alaska", B: "unimak-pass"},
		{A: "unimak-pass", B: "bering-sea"},
		{A: "bering-sea", B: "bering-strait"},
		{A: "bering-sea", B: "pacific-dateline"},
		{A: "hawaii-north", B: "san-pedro"},
		{A: "hawaii-north", B: "equator-pacific-east"},
		{A: "equator-pacific-east", B: "equator-pacific-west"},
		{A: "equator-pacific-west", B: "pacific-nw"},

		// Northwest passage
		{A: "bering-strait", B: "beaufort", Passage: PassageNorthwest},
		{A: "beaufort", B: "canadian-arctic", Passage: PassageNorthwest},
		{A: "canadian-arctic", B: "lancaster-sound", Passage: PassageNorthwest},
		{A: "lancaster-sound", B: "davis-strait", Passage: PassageNorthwest},
		{A: "davis-strait", B: "halifax-offing"},

		// Cape route and South Atlantic
		{A: "singapore-strait", B: "sumatra-west"},
		{A: "sumatra-west", B: "indian-south"},
		{A: "indian-south", B: "madagascar-south"},
		{A: "madagascar-south", B: "agulhas"},
		{A: "agulhas", B: "walvis-offing"},
		{A: "walvis-offing", B: "gulf-of-guinea"},
		{A: "gulf-of-guinea", B: "dakar-offing"},
		{A: "gulf-of-guinea", B: "recife-offing"},
		{A: "dakar-offing", B: "recife-offing"},
		{A: "dakar-offing", B: "canary"},
		{A: "canary", B: "lisbon-offing"},
		{A: "canary", B: "cape-st-vincent"},

		// South America and Cape Horn
		{A: "recife-offing", B: "rio-offing"},
		{A: "rio-offing", B: "la-plata"},
		{A: "la-plata", B: "cape-horn", Passage: PassageChili},
		{A: "cape-horn", B: "valparaiso-offing", Passage: PassageChili},
		{A: "valparaiso-offing", B: "callao-offing"},
		{A: "callao-offing", B: "balboa"},

		// Panama and Caribbean
		{A: "balboa", B: "colon", Passage: PassagePanama},
		{A: "balboa", B: "mexico-pacific"},
		{A: "mexico-pacific", B: "san-pedro"},
		{A: "colon", B: "caribbean-central"},
		{A: "caribbean-central", B: "yucatan-channel"},
		{A: "caribbean-central", B: "puerto-rico-north"},
		{A: "yucatan-channel", B: "gulf-of-mexico"},
		{A: "yucatan-channel", B: "florida-strait"},

		// North Atlantic lanes
		{A: "florida-strait", B: "chesapeake"},
		{A: "chesapeake", B: "new-york-approach"},
		{A: "new-york-approach", B: "halifax-offing"},
		{A: "halifax-offing", B: "atlantic-west"},
		{A: "atlantic-west", B: "mid-atlantic-north"},
		{A: "mid-atlantic-north", B: "channel-west"},
		{A: "azores", B: "lisbon-offing"},
		{A: "azores", B: "atlantic-west"},
		{A: "azores", B: "puerto-rico-north"},
	}

	return nodes, links
}
