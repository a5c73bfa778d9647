package classify

import "github.com/Amit12200412/ai-legal-assistant/models"

// Categories is the classification table in match priority order. The order
// is part of the contract: a query whose noun/verb tokens contain several
// trigger keywords resolves to the first entry below that matches, so
// reordering entries changes observable results. Current order: accident,
// theft, property, murder, fraud, assault, rape.
var Categories = []models.LegalCategory{
	{
		Key:         "accident",
		StatuteCode: "IPC 279",
		Description: "Rash driving or negligent conduct causing danger.",
		RecommendedActions: []string{
			"Report the accident at the nearest police station within 24 hours",
			"Collect the insurance details of all vehicles involved",
			"Obtain a copy of the spot panchnama and FIR",
			"File a claim before the Motor Accident Claims Tribunal",
		},
		RequiredProofs: []string{
			"FIR or accident report copy",
			"Medical records of injuries",
			"Vehicle registration and insurance papers",
			"Photographs of the accident spot",
		},
	},
	{
		Key:         "theft",
		StatuteCode: "IPC 378",
		Description: "Theft — punishment may extend to 3 years and/or fine.",
		RecommendedActions: []string{
			"File an FIR at the police station with jurisdiction",
			"Prepare a list of stolen items with approximate value",
			"Preserve any CCTV footage of the incident",
			"Inform your insurer if the stolen property was insured",
		},
		RequiredProofs: []string{
			"FIR copy",
			"Purchase receipts or ownership proof of stolen items",
			"CCTV footage or witness statements",
		},
	},
	{
		Key:         "property",
		StatuteCode: "Civil Property Matter",
		Description: "Disputes related to property, title and ownership.",
		RecommendedActions: []string{
			"Collect the title deed and all registration documents",
			"Obtain an encumbrance certificate from the sub-registrar",
			"Send a legal notice to the opposite party",
			"File a civil suit for declaration or possession if unresolved",
		},
		RequiredProofs: []string{
			"Title deed and sale agreement",
			"Property tax receipts",
			"Encumbrance certificate",
			"Survey records or mutation entries",
		},
	},
	{
		Key:         "murder",
		StatuteCode: "IPC 302",
		Description: "Murder — punishment may include life imprisonment or death.",
		RecommendedActions: []string{
			"Report to the police immediately and insist on an FIR",
			"Do not disturb the scene before the police arrive",
			"Engage a criminal lawyer at the earliest",
			"Request a copy of the post-mortem report",
		},
		RequiredProofs: []string{
			"FIR copy",
			"Post-mortem report",
			"Witness statements",
			"Forensic evidence collected at the scene",
		},
	},
	{
		Key:         "fraud",
		StatuteCode: "IPC 420",
		Description: "Cheating and dishonesty.",
		RecommendedActions: []string{
			"Gather all written communication with the accused",
			"File a complaint with the police or the cyber cell",
			"Notify your bank to freeze fraudulent transactions",
			"Send a legal notice demanding restitution",
		},
		RequiredProofs: []string{
			"Transaction records or bank statements",
			"Written agreements, messages or emails",
			"Identity details of the accused if known",
		},
	},
	{
		Key:         "assault",
		StatuteCode: "IPC 351",
		Description: "Assault or criminal force.",
		RecommendedActions: []string{
			"Seek medical attention and keep the records",
			"File an FIR describing the incident and the accused",
			"Identify witnesses present at the scene",
		},
		RequiredProofs: []string{
			"Medical examination report",
			"FIR copy",
			"Witness statements",
		},
	},
	{
		Key:         "rape",
		StatuteCode: "IPC 376",
		Description: "Rape — severe sexual offence.",
		RecommendedActions: []string{
			"Contact the police or a support helpline immediately",
			"Undergo a medical examination without delay",
			"Record your statement before a magistrate under CrPC 164",
			"Seek assistance from a victim support organisation",
		},
		RequiredProofs: []string{
			"FIR copy",
			"Medical examination report",
			"Statement recorded before the magistrate",
		},
	},
}

// DefaultCategory is returned when no trigger keyword matches
var DefaultCategory = models.LegalCategory{
	Key:         "general",
	StatuteCode: "General Legal Matter",
	Description: "The query does not match a known category. Consult a lawyer for advice specific to your situation.",
	RecommendedActions: []string{
		"Consult a lawyer",
		"Write down a dated account of the events while they are fresh",
		"Collect any documents connected to the matter",
	},
	RequiredProofs: []string{
		"Any documents related to the matter",
		"Names and contact details of people involved",
	},
}
