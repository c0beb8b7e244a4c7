package generator

// vocabulary holds the static tables every builder samples from. One
// instance is shared across a run; tables are never mutated.
type vocabulary struct {
	firstNames   []string
	lastNames    []string
	emailDomains []string
	cities       []city
	interests    []string
	themes       []string
	languages    []string
	userTags     []string

	categories    []string
	brands        []string
	adjectives    []string
	nouns         []string
	materials     []string
	warehouses    []string
	colors        []string
	clothingSizes []string
	productTags   []string
	ratingNotes   []string

	orderStatuses   []string
	shippingMethods []string
	paymentMethods  []string
	paymentStatuses []string
	orderSources    []string
	campaigns       []string
	referrers       []string
	streets         []string

	eventTypes  []string
	deviceTypes []string
	oses        []string
	browsers    []string
	pagePaths   []string
	searchTerms []string
	userAgents  []string

	contentTypes      []string
	contentStatuses   []string
	authors           []author
	contentCategories []string
	contentTags       []string
	userGroups        []string
	sentences         []string
}

type city struct {
	name    string
	country string
	lon     float64
	lat     float64
}

type author struct {
	id    string
	name  string
	email string
}

func defaultVocabulary() vocabulary {
	return vocabulary{
		firstNames:   []string{"Jane", "John", "Alex", "Priya", "Liu", "Maria", "Omar", "Sofia", "Noah", "Emma", "Lucas", "Mia", "Ava", "Ethan", "Zara", "Ivan", "Lena", "Marco"},
		lastNames:    []string{"Doe", "Smith", "Chen", "Patel", "Garcia", "Khan", "Kim", "Ivanov", "Nguyen", "Silva", "Brown", "Lee", "Okafor", "Novak"},
		emailDomains: []string{"example.com", "mail.com", "inbox.dev", "fastmail.org", "post.net"},
		cities: []city{
			{"New York", "US", -74.0060, 40.7128},
			{"San Francisco", "US", -122.4194, 37.7749},
			{"London", "GB", -0.1278, 51.5074},
			{"Berlin", "DE", 13.4050, 52.5200},
			{"Tokyo", "JP", 139.6917, 35.6895},
			{"Sydney", "AU", 151.2093, -33.8688},
			{"Toronto", "CA", -79.3832, 43.6532},
			{"Mumbai", "IN", 72.8777, 19.0760},
			{"São Paulo", "BR", -46.6333, -23.5505},
			{"Amsterdam", "NL", 4.9041, 52.3676},
		},
		interests: []string{"photography", "cooking", "travel", "gaming", "reading", "cycling", "music", "hiking", "painting", "yoga", "gardening", "chess"},
		themes:    []string{"light", "dark", "auto"},
		languages: []string{"en", "es", "de", "fr", "ja", "pt"},
		userTags:  []string{"early_adopter", "beta_tester", "premium", "newsletter", "vip", "referral"},

		categories:    []string{"electronics", "clothing", "home", "sports", "books", "beauty", "toys"},
		brands:        []string{"Acme", "Northwind", "Zenith", "Orbit", "Lumen", "Vertex", "Cascade", "Atlas"},
		adjectives:    []string{"Ultra", "Compact", "Premium", "Classic", "Smart", "Eco", "Pro", "Essential"},
		nouns:         []string{"Speaker", "Jacket", "Lamp", "Backpack", "Watch", "Bottle", "Keyboard", "Chair", "Camera", "Blender"},
		materials:     []string{"aluminum", "steel", "cotton", "leather", "plastic", "bamboo", "glass", "wool"},
		warehouses:    []string{"WH-EAST", "WH-WEST", "WH-CENTRAL", "WH-EU", "WH-APAC"},
		colors:        []string{"black", "white", "red", "blue", "green", "silver", "navy", "beige"},
		clothingSizes: []string{"XS", "S", "M", "L", "XL", "XXL"},
		productTags:   []string{"bestseller", "new_arrival", "clearance", "eco_friendly", "limited", "exclusive", "gift_idea"},
		ratingNotes: []string{
			"Exactly what I was looking for.",
			"Quality could be better for the price.",
			"Arrived quickly, works as described.",
			"Would buy again.",
			"Not as pictured, but decent.",
			"Five stars, no complaints.",
			"Stopped working after a month.",
			"Great value.",
		},

		orderStatuses:   []string{"pending", "processing", "shipped", "delivered", "cancelled"},
		shippingMethods: []string{"standard", "express", "overnight", "pickup"},
		paymentMethods:  []string{"credit_card", "debit_card", "paypal", "bank_transfer"},
		paymentStatuses: []string{"authorized", "captured", "refunded"},
		orderSources:    []string{"web", "mobile_app", "phone", "marketplace"},
		campaigns:       []string{"summer_sale", "black_friday", "new_year", "spring_launch"},
		referrers:       []string{"google", "newsletter", "instagram", "affiliate"},
		streets:         []string{"Market St", "Mission Ave", "Broadway", "Sunset Blvd", "Park Ln", "Cedar Rd", "Oak Way", "Pine St"},

		eventTypes:  []string{"page_view", "click", "search", "add_to_cart", "purchase", "signup", "logout"},
		deviceTypes: []string{"desktop", "mobile", "tablet"},
		oses:        []string{"Windows", "macOS", "Linux", "iOS", "Android"},
		browsers:    []string{"Chrome", "Firefox", "Safari", "Edge"},
		pagePaths:   []string{"/", "/products", "/products/detail", "/cart", "/checkout", "/search", "/account", "/blog"},
		searchTerms: []string{"wireless speaker", "running shoes", "desk lamp", "winter jacket", "coffee maker", "board games"},
		userAgents: []string{
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 13_5) AppleWebKit/605.1.15",
			"Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/126.0",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15",
			"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36",
		},

		contentTypes:    []string{"article", "blog_post", "tutorial", "news", "page"},
		contentStatuses: []string{"draft", "review", "published", "archived"},
		authors: []author{
			{"auth_001", "Dana Whitfield", "dana@editorial.example.com"},
			{"auth_002", "Ravi Menon", "ravi@editorial.example.com"},
			{"auth_003", "Claire Fontaine", "claire@editorial.example.com"},
			{"auth_004", "Tomás Herrera", "tomas@editorial.example.com"},
			{"auth_005", "Yuki Tanaka", "yuki@editorial.example.com"},
		},
		contentCategories: []string{"product_updates", "engineering", "design", "how_to", "company_news", "industry"},
		contentTags:       []string{"featured", "deep_dive", "quick_read", "opinion", "release_notes", "interview", "case_study"},
		userGroups:        []string{"staff", "subscribers", "partners", "beta"},
		sentences: []string{
			"The quarterly numbers confirmed what the team had suspected for months.",
			"Every system looks simple until someone asks it to scale.",
			"We started with a whiteboard sketch and an unreasonable deadline.",
			"Customers rarely ask for the feature they actually need.",
			"The migration took three attempts and two pots of coffee.",
			"Good defaults beat clever configuration almost every time.",
			"Nobody noticed the cache until the day it disappeared.",
			"A small experiment turned into the most requested capability of the year.",
			"The hardest part was deciding what to leave out.",
			"Measured twice, shipped once.",
		},
	}
}
