// Package i18n holds the static interface string tables for English, Hindi
// and Marathi. This is a plain lookup table, not a translation engine.
package i18n

import "github.com/Amit12200412/ai-legal-assistant/models"

var tables = map[models.Language]map[string]string{
	models.LangEnglish: {
		"app_title":          "⚖️ AI Legal Assistant",
		"login":              "Login",
		"signup":             "Sign Up",
		"username":           "Username",
		"password":           "Password",
		"create_account":     "Create Account",
		"submit":             "Submit",
		"logout":             "Logout",
		"nav_menu":           "Navigation",
		"legal_query":        "Enter your legal query",
		"analyze":            "Analyze",
		"generate_doc":       "Generate Document",
		"doc_type":           "Document Type",
		"name":               "Your Name",
		"address":            "Your Address",
		"mobile":             "Mobile Number",
		"against":            "Against Whom (Name / Company)",
		"details":            "Incident Details (editable)",
		"download_pdf":       "Download PDF",
		"history":            "History",
		"upload_doc":         "Upload a TXT Document",
		"check_doc":          "Check Document",
		"chatbot":            "Chatbot",
		"suggestions":        "Query Suggestions",
		"category":           "Category",
		"filter_suggestions": "Filter suggestions",
		"dark_mode":          "Dark Mode",
		"language":           "Language",
	},
	models.LangHindi: {
		"app_title":          "⚖️ एआई विधिक सहायक",
		"login":              "लॉगिन",
		"signup":             "साइन अप",
		"username":           "उपयोगकर्ता नाम",
		"password":           "पासवर्ड",
		"create_account":     "खाता बनाएँ",
		"submit":             "जमा करें",
		"logout":             "लॉग आउट",
		"nav_menu":           "नेविगेशन",
		"legal_query":        "अपना कानूनी प्रश्न दर्ज करें",
		"analyze":            "विश्लेषण करें",
		"generate_doc":       "दस्तावेज़ बनाएँ",
		"doc_type":           "दस्तावेज़ प्रकार",
		"name":               "आपका नाम",
		"address":            "आपका पता",
		"mobile":             "मोबाइल नंबर",
		"against":            "जिसके खिलाफ (नाम / कंपनी)",
		"details":            "घटना का विवरण (संपादन योग्य)",
		"download_pdf":       "PDF डाउनलोड करें",
		"history":            "इतिहास",
		"upload_doc":         "TXT दस्तावेज़ अपलोड करें",
		"check_doc":          "दस्तावेज़ जांचें",
		"chatbot":            "चैटबॉट",
		"suggestions":        "प्रश्न सुझाव",
		"category":           "श्रेणी",
		"filter_suggestions": "सुझाव फ़िल्टर करें",
		"dark_mode":          "डार्क मोड",
		"language":           "भाषा",
	},
	models.LangMarathi: {
		"app_title":          "⚖️ एआय विधी सहाय्यक",
		"login":              "लॉगिन",
		"signup":             "साइन अप",
		"username":           "वापरकर्ता नाव",
		"password":           "पासवर्ड",
		"create_account":     "खाते तयार करा",
		"submit":             "सबमिट करा",
		"logout":             "लॉगआउट",
		"nav_menu":           "नेव्हिगेशन",
		"legal_query":        "आपला कायदेशीर प्रश्न लिहा",
		"analyze":            "विश्लेषण करा",
		"generate_doc":       "दस्तऐवज तयार करा",
		"doc_type":           "दस्तऐवज प्रकार",
		"name":               "आपले नाव",
		"address":            "आपला पत्ता",
		"mobile":             "मोबाईल क्रमांक",
		"against":            "ज्यांच्याविरुद्ध (नाव / कंपनी)",
		"details":            "घटनेचे तपशील (संपादन करण्यायोग्य)",
		"download_pdf":       "PDF डाउनलोड करा",
		"history":            "इतिहास",
		"upload_doc":         "TXT दस्तऐवज अपलोड करा",
		"check_doc":          "दस्तऐवज तपासा",
		"chatbot":            "चॅटबॉट",
		"suggestions":        "प्रश्न सूचना",
		"category":           "वर्ग",
		"filter_suggestions": "सूचना फिल्टर करा",
		"dark_mode":          "डार्क मोड",
		"language":           "भाषा",
	},
}

// Lookup returns the string for key in lang, falling back to English for
// unknown languages and missing keys, and to the key itself as a last resort.
func Lookup(lang models.Language, key string) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[models.LangEnglish][key]; ok {
		return s
	}
	return key
}

// Table returns a copy of the full string table for lang, falling back to
// English for unknown languages.
func Table(lang models.Language) map[string]string {
	table, ok := tables[lang]
	if !ok {
		table = tables[models.LangEnglish]
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
