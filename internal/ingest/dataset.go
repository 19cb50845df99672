// Package ingest loads policy documents into the knowledge base, from
// the built-in sample dataset, local files, or agency websites.
package ingest

import "github.com/ranacirrusgo/policynav/internal/model"

// SampleDocuments returns the built-in policy dataset used to seed a
// fresh knowledge base.
func SampleDocuments() []model.Document {
	return []model.Document{
		{
			ID:     "eo-14067",
			Title:  "Executive Order 14067 - Ensuring Responsible Development of Digital Assets",
			Type:   "executive_order",
			Agency: "Executive Office of the President",
			Date:   "2022-03-09",
			Status: "active",
			Source: "sample",
			Text: "Federal agencies must assess the risks and benefits of digital assets within 180 days. " +
				"Financial institutions shall implement consumer protection measures for cryptocurrency transactions. " +
				"Agencies may coordinate with international partners on digital asset standards. " +
				"Entities shall not facilitate transactions with sanctioned digital asset addresses. " +
				"Violations of sanctions requirements carry civil penalties up to $250,000 per transaction.",
			ComplianceRequirements: []string{
				"Risk assessment reports due within 180 days",
				"Consumer protection measures for digital asset transactions",
				"Sanctions screening for digital asset addresses",
			},
		},
		{
			ID:     "section-230",
			Title:  "Section 230 of the Communications Decency Act",
			Type:   "statute",
			Agency: "Federal Communications Commission",
			Date:   "1996-02-08",
			Status: "active",
			Source: "sample",
			Text: "Interactive computer service providers shall not be treated as the publisher of third-party content. " +
				"Platforms may restrict access to material they consider obscene or objectionable in good faith. " +
				"Providers must disclose content moderation practices to qualify for liability protections. " +
				"Services cannot claim immunity for content they develop in whole or in part.",
			ComplianceRequirements: []string{
				"Good-faith content moderation",
				"Disclosure of moderation practices",
			},
		},
		{
			ID:     "gdpr-eu",
			Title:  "General Data Protection Regulation (GDPR)",
			Type:   "regulation",
			Agency: "European Commission",
			Date:   "2018-05-25",
			Status: "active",
			Source: "sample",
			Text: "Controllers must obtain explicit consent before processing personal data. " +
				"Organizations must report data breaches within 72 hours of becoming aware. " +
				"Data subjects may request erasure of their personal data at any time. " +
				"Controllers shall not transfer personal data to third countries without adequate safeguards. " +
				"Fines for violations reach 4% of annual global turnover or $20,000,000, whichever is higher.",
			ComplianceRequirements: []string{
				"Explicit consent for data processing",
				"Breach notification within 72 hours",
				"Right-to-erasure handling",
			},
		},
		{
			ID:     "hipaa-1996",
			Title:  "Health Insurance Portability and Accountability Act (HIPAA)",
			Type:   "statute",
			Agency: "Department of Health and Human Services",
			Date:   "1996-08-21",
			Status: "active",
			Source: "sample",
			Text: "Covered entities must implement administrative safeguards to protect patient health information. " +
				"Providers shall not disclose protected health information without patient authorization. " +
				"Patients may request copies of their medical records within 30 days. " +
				"Business associates must sign agreements governing the handling of health data. " +
				"Civil penalties for violations range from $100 to $50,000 per incident.",
			ComplianceRequirements: []string{
				"Administrative safeguards for patient data",
				"Patient authorization before disclosure",
				"Business associate agreements",
			},
		},
	}
}
