// Package i18n holds the translation dictionaries for the storefront.
// Lookups never fail: an untranslated key falls back to the raw key text
// so a dictionary gap degrades to English-ish output instead of an error.
package i18n

import "github.com/Nisand-KB/FRESH-MART/internal/domain"

// Key identifies one translatable message
type Key string

const (
	KeyOrderTitle         Key = "orderTitle"
	KeyItems              Key = "items"
	KeyAmountToPay        Key = "amountToPay"
	KeyDeliveryInfo       Key = "deliveryInfo"
	KeyContactNumber      Key = "contactNumber"
	KeyEmailAddress       Key = "emailAddress"
	KeyStreetAddress      Key = "streetAddress"
	KeyAddressPlaceholder Key = "addressPlaceholder"
	KeyLocationFetched    Key = "locationFetched"
	KeyLocationFailed     Key = "locationFailed"
	KeyFillDetails        Key = "fillDetails"
	KeyNoItems            Key = "noItems"
)

// Keys lists every message key; tests use it to prove the dictionaries are total
var Keys = []Key{
	KeyOrderTitle, KeyItems, KeyAmountToPay, KeyDeliveryInfo,
	KeyContactNumber, KeyEmailAddress, KeyStreetAddress,
	KeyAddressPlaceholder, KeyLocationFetched, KeyLocationFailed,
	KeyFillDetails, KeyNoItems,
}

var messages = map[domain.Language]map[Key]string{
	domain.LanguageEnglish: {
		KeyOrderTitle:         "FRESHMART ORDER INVOICE",
		KeyItems:              "Items",
		KeyAmountToPay:        "Amount to Pay",
		KeyDeliveryInfo:       "Delivery Information",
		KeyContactNumber:      "Contact Number",
		KeyEmailAddress:       "Email Address",
		KeyStreetAddress:      "Street Address",
		KeyAddressPlaceholder: "GPS Location Captured",
		KeyLocationFetched:    "GPS Location fetched successfully!",
		KeyLocationFailed:     "Location access denied.",
		KeyFillDetails:        "Please fill in details.",
		KeyNoItems:            "No items found in this section",
	},
	domain.LanguageTamil: {
		KeyOrderTitle:         "FreshMart ஆர்டர் விவரம்",
		KeyItems:              "பொருட்கள்",
		KeyAmountToPay:        "செலுத்த வேண்டிய தொகை",
		KeyDeliveryInfo:       "டெலிவரி தகவல்",
		KeyContactNumber:      "கைபேசி எண்",
		KeyEmailAddress:       "மின்னஞ்சல் முகவரி",
		KeyStreetAddress:      "தெரு முகவரி",
		KeyAddressPlaceholder: "இருப்பிடம் கண்டறியப்பட்டது",
		KeyLocationFetched:    "இருப்பிடம் வெற்றிகரமாக கண்டறியப்பட்டது!",
		KeyLocationFailed:     "இருப்பிட அனுமதி மறுக்கப்பட்டது.",
		KeyFillDetails:        "விவரங்களைப் பூர்த்தி செய்யவும்.",
		KeyNoItems:            "இப்பகுதியில் பொருட்கள் இல்லை",
	},
}

var categoryLabels = map[domain.Language]map[domain.Category]string{
	domain.LanguageEnglish: {
		domain.CategoryAll:        "All",
		domain.CategoryFruits:     "Fruits",
		domain.CategoryVegetables: "Vegetables",
		domain.CategoryDairy:      "Dairy",
		domain.CategoryBakery:     "Bakery",
		domain.CategoryPantry:     "Pantry",
		domain.CategoryMeat:       "Meat",
	},
	domain.LanguageTamil: {
		domain.CategoryAll:        "அனைத்தும்",
		domain.CategoryFruits:     "பழங்கள்",
		domain.CategoryVegetables: "காய்கறிகள்",
		domain.CategoryDairy:      "பால் பொருட்கள்",
		domain.CategoryBakery:     "பேக்கரி",
		domain.CategoryPantry:     "மளிகை",
		domain.CategoryMeat:       "இறைச்சி",
	},
}

var unitLabels = map[domain.Language]map[domain.Unit]string{
	domain.LanguageEnglish: {
		domain.UnitKg:     "kg",
		domain.UnitBunch:  "bunch",
		domain.UnitLitre:  "L",
		domain.UnitPacket: "pkt",
		domain.UnitPiece:  "pc",
		domain.UnitBottle: "btl",
		domain.UnitCup:    "cup",
	},
	domain.LanguageTamil: {
		domain.UnitKg:     "கிலோ",
		domain.UnitBunch:  "கட்டு",
		domain.UnitLitre:  "லிட்டர்",
		domain.UnitPacket: "பேக்கட்",
		domain.UnitPiece:  "ஒன்று",
		domain.UnitBottle: "பாட்டில்",
		domain.UnitCup:    "கப்",
	},
}

// Label returns the localized message for key, or the raw key when missing
func Label(lang domain.Language, key Key) string {
	if s, ok := messages[lang][key]; ok {
		return s
	}
	return string(key)
}

// CategoryLabel returns the localized category name, or the raw category
func CategoryLabel(lang domain.Language, c domain.Category) string {
	if s, ok := categoryLabels[lang][c]; ok {
		return s
	}
	return string(c)
}

// UnitLabel returns the localized unit name, or the raw unit
func UnitLabel(lang domain.Language, u domain.Unit) string {
	if s, ok := unitLabels[lang][u]; ok {
		return s
	}
	return string(u)
}
