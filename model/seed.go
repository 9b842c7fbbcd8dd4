package model

import "time"

// SeedContracts returns the demo contract portfolio used when the store
// starts empty and demo seeding is enabled.
func SeedContracts() []Contract {
	return []Contract{
		{
			ID:                 "1",
			Name:               "Master Service Agreement",
			Vendor:             "Acme Corp",
			ReviewDate:         time.Date(2025, time.October, 8, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskLow,
			Reviewer:           "Sarah Johnson",
			TermMatchingRate:   95.2,
			PointsMatchingRate: 92.8,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2451",
			AthenaURL:          "https://athena.company.com/review/ATH-9821",
			Standard:           "GDPR-2024",
			ReviewDurationDays: 2,
		},
		{
			ID:                 "2",
			Name:               "SaaS Subscription Agreement",
			Vendor:             "TechStack Inc",
			ReviewDate:         time.Date(2025, time.October, 7, 0, 0, 0, 0, time.UTC),
			Status:             StatusNeedsReview,
			RiskLevel:          RiskMedium,
			Reviewer:           "Michael Chen",
			TermMatchingRate:   78.5,
			PointsMatchingRate: 81.3,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2450",
			AthenaURL:          "https://athena.company.com/review/ATH-9820",
			Standard:           "SOC2-TYPE2-2024",
			ReviewDurationDays: 7,
		},
		{
			ID:                 "3",
			Name:               "Data Processing Agreement",
			Vendor:             "CloudServe Ltd",
			ReviewDate:         time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskLow,
			Reviewer:           "Emily Rodriguez",
			TermMatchingRate:   91.7,
			PointsMatchingRate: 88.9,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2449",
			AthenaURL:          "https://athena.company.com/review/ATH-9819",
			Standard:           "HIPAA-2024",
			ReviewDurationDays: 12,
		},
		{
			ID:                 "4",
			Name:               "Enterprise License Agreement",
			Vendor:             "DataFlow Systems",
			ReviewDate:         time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC),
			Status:             StatusNonCompliant,
			RiskLevel:          RiskHigh,
			Reviewer:           "David Park",
			TermMatchingRate:   42.1,
			PointsMatchingRate: 38.5,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2448",
			AthenaURL:          "https://athena.company.com/review/ATH-9818",
			Standard:           "CCPA-2024",
			ReviewDurationDays: 4,
		},
		{
			ID:                 "5",
			Name:               "Vendor Service Agreement",
			Vendor:             "Global Solutions",
			ReviewDate:         time.Date(2025, time.October, 4, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskLow,
			Reviewer:           "Sarah Johnson",
			TermMatchingRate:   93.4,
			PointsMatchingRate: 90.6,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2447",
			AthenaURL:          "https://athena.company.com/review/ATH-9817",
			Standard:           "ISO27001-2024",
			ReviewDurationDays: 9,
		},
		{
			ID:                 "6",
			Name:               "Professional Services Contract",
			Vendor:             "Consulting Partners",
			ReviewDate:         time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC),
			Status:             StatusNeedsReview,
			RiskLevel:          RiskMedium,
			Reviewer:           "Michael Chen",
			TermMatchingRate:   72.8,
			PointsMatchingRate: 75.2,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2446",
			AthenaURL:          "https://athena.company.com/review/ATH-9816",
			Standard:           "PCI-DSS-2024",
			ReviewDurationDays: 14,
		},
		{
			ID:                 "7",
			Name:               "Non-Disclosure Agreement",
			Vendor:             "Innovation Labs",
			ReviewDate:         time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskLow,
			Reviewer:           "Emily Rodriguez",
			TermMatchingRate:   96.1,
			PointsMatchingRate: 94.3,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2445",
			AthenaURL:          "https://athena.company.com/review/ATH-9815",
			Standard:           "GDPR-2024",
			ReviewDurationDays: 6,
		},
		{
			ID:                 "8",
			Name:               "Cloud Infrastructure Agreement",
			Vendor:             "HostTech Inc",
			ReviewDate:         time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskMedium,
			Reviewer:           "David Park",
			TermMatchingRate:   87.6,
			PointsMatchingRate: 85.4,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2444",
			AthenaURL:          "https://athena.company.com/review/ATH-9814",
			Standard:           "SOC2-TYPE2-2024",
			ReviewDurationDays: 11,
		},
		{
			ID:                 "9",
			Name:               "Software License Agreement",
			Vendor:             "DevTools Pro",
			ReviewDate:         time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskLow,
			Reviewer:           "Sarah Johnson",
			TermMatchingRate:   92.3,
			PointsMatchingRate: 89.7,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2443",
			AthenaURL:          "https://athena.company.com/review/ATH-9813",
			Standard:           "HIPAA-2024",
			ReviewDurationDays: 3,
		},
		{
			ID:                 "10",
			Name:               "API Integration Agreement",
			Vendor:             "IntegrationHub",
			ReviewDate:         time.Date(2025, time.September, 28, 0, 0, 0, 0, time.UTC),
			Status:             StatusNeedsReview,
			RiskLevel:          RiskMedium,
			Reviewer:           "Michael Chen",
			TermMatchingRate:   68.9,
			PointsMatchingRate: 71.5,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2442",
			AthenaURL:          "https://athena.company.com/review/ATH-9812",
			Standard:           "CCPA-2024",
			ReviewDurationDays: 8,
		},
		{
			ID:                 "11",
			Name:               "Security Audit Contract",
			Vendor:             "CyberShield Inc",
			ReviewDate:         time.Date(2025, time.September, 25, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskHigh,
			Reviewer:           "Emily Rodriguez",
			TermMatchingRate:   94.8,
			PointsMatchingRate: 91.2,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2441",
			AthenaURL:          "https://athena.company.com/review/ATH-9811",
			Standard:           "ISO27001-2024",
			ReviewDurationDays: 13,
		},
		{
			ID:                 "12",
			Name:               "Marketing Services Agreement",
			Vendor:             "BrandBoost Agency",
			ReviewDate:         time.Date(2025, time.September, 22, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskLow,
			Reviewer:           "David Park",
			TermMatchingRate:   88.4,
			PointsMatchingRate: 86.1,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2440",
			AthenaURL:          "https://athena.company.com/review/ATH-9810",
			Standard:           "PCI-DSS-2024",
			ReviewDurationDays: 5,
		},
		{
			ID:                 "13",
			Name:               "Vendor Management Platform",
			Vendor:             "VendorConnect",
			ReviewDate:         time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC),
			Status:             StatusNeedsReview,
			RiskLevel:          RiskMedium,
			Reviewer:           "Sarah Johnson",
			TermMatchingRate:   75.3,
			PointsMatchingRate: 78.9,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2439",
			AthenaURL:          "https://athena.company.com/review/ATH-9809",
			Standard:           "GDPR-2024",
			ReviewDurationDays: 10,
		},
		{
			ID:                 "14",
			Name:               "HR Software License",
			Vendor:             "PeopleFirst HR",
			ReviewDate:         time.Date(2025, time.September, 18, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskLow,
			Reviewer:           "Michael Chen",
			TermMatchingRate:   90.6,
			PointsMatchingRate: 87.3,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2438",
			AthenaURL:          "https://athena.company.com/review/ATH-9808",
			Standard:           "SOC2-TYPE2-2024",
			ReviewDurationDays: 2,
		},
		{
			ID:                 "15",
			Name:               "Cloud Storage Agreement",
			Vendor:             "DataVault Solutions",
			ReviewDate:         time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskMedium,
			Reviewer:           "Emily Rodriguez",
			TermMatchingRate:   85.2,
			PointsMatchingRate: 82.8,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2437",
			AthenaURL:          "https://athena.company.com/review/ATH-9807",
			Standard:           "HIPAA-2024",
			ReviewDurationDays: 7,
		},
		{
			ID:                 "16",
			Name:               "Payment Processing Agreement",
			Vendor:             "PaySecure Gateway",
			ReviewDate:         time.Date(2025, time.September, 12, 0, 0, 0, 0, time.UTC),
			Status:             StatusNonCompliant,
			RiskLevel:          RiskHigh,
			Reviewer:           "David Park",
			TermMatchingRate:   45.7,
			PointsMatchingRate: 41.2,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2436",
			AthenaURL:          "https://athena.company.com/review/ATH-9806",
			Standard:           "CCPA-2024",
			ReviewDurationDays: 12,
		},
		{
			ID:                 "17",
			Name:               "Analytics Platform License",
			Vendor:             "DataInsights Co",
			ReviewDate:         time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskLow,
			Reviewer:           "Sarah Johnson",
			TermMatchingRate:   93.9,
			PointsMatchingRate: 91.5,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2435",
			AthenaURL:          "https://athena.company.com/review/ATH-9805",
			Standard:           "ISO27001-2024",
			ReviewDurationDays: 4,
		},
		{
			ID:                 "18",
			Name:               "Support Services Contract",
			Vendor:             "TechSupport 24/7",
			ReviewDate:         time.Date(2025, time.September, 8, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskLow,
			Reviewer:           "Michael Chen",
			TermMatchingRate:   89.1,
			PointsMatchingRate: 86.7,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2434",
			AthenaURL:          "https://athena.company.com/review/ATH-9804",
			Standard:           "PCI-DSS-2024",
			ReviewDurationDays: 9,
		},
		{
			ID:                 "19",
			Name:               "Consulting Services Agreement",
			Vendor:             "Strategy Advisors",
			ReviewDate:         time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC),
			Status:             StatusNeedsReview,
			RiskLevel:          RiskMedium,
			Reviewer:           "Emily Rodriguez",
			TermMatchingRate:   70.4,
			PointsMatchingRate: 73.8,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2433",
			AthenaURL:          "https://athena.company.com/review/ATH-9803",
			Standard:           "GDPR-2024",
			ReviewDurationDays: 14,
		},
		{
			ID:                 "20",
			Name:               "Training Services Contract",
			Vendor:             "LearnTech Academy",
			ReviewDate:         time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
			Status:             StatusCompliant,
			RiskLevel:          RiskLow,
			Reviewer:           "David Park",
			TermMatchingRate:   91.2,
			PointsMatchingRate: 88.6,
			JiraEngagementURL:  "https://jira.company.com/browse/ENG-2432",
			AthenaURL:          "https://athena.company.com/review/ATH-9802",
			Standard:           "SOC2-TYPE2-2024",
			ReviewDurationDays: 6,
		},
	}
}

// SeedRequestItems returns the review request links shown in the sidebar
// submenu.
func SeedRequestItems() []ReviewRequestItem {
	return []ReviewRequestItem{
		{ID: "gdpr", Label: "GDPR Review", URL: "https://forms.company.com/compliance/gdpr-review"},
		{ID: "soc2", Label: "SOC 2 Review", URL: "https://forms.company.com/compliance/soc2-review"},
		{ID: "hipaa", Label: "HIPAA Review", URL: "https://forms.company.com/compliance/hipaa-review"},
		{ID: "ccpa", Label: "CCPA Review", URL: "https://forms.company.com/compliance/ccpa-review"},
		{ID: "iso27001", Label: "ISO 27001 Review", URL: "https://forms.company.com/compliance/iso27001-review"},
		{ID: "pci-dss", Label: "PCI DSS Review", URL: "https://forms.company.com/compliance/pci-dss-review"},
		{ID: "custom", Label: "Custom Review", URL: "https://forms.company.com/compliance/custom-review"},
	}
}

// SeedStandards returns the supported review standards, both current and
// superseded revisions.
func SeedStandards() []ReviewStandard {
	return []ReviewStandard{
		{
			TypeID:        "GDPR-2024",
			TypeName:      "GDPR Compliance Review",
			PublishedDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Author:        "Emily Rodriguez",
			Version:       "v2.3.0",
			Status:        StandardActive,
		},
		{
			TypeID:        "SOC2-TYPE2-2024",
			TypeName:      "SOC 2 Type II Compliance Review",
			PublishedDate: time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
			Author:        "Michael Chen",
			Version:       "v1.8.2",
			Status:        StandardActive,
		},
		{
			TypeID:        "HIPAA-2024",
			TypeName:      "HIPAA Compliance Review",
			PublishedDate: time.Date(2024, time.January, 30, 0, 0, 0, 0, time.UTC),
			Author:        "Sarah Johnson",
			Version:       "v3.1.0",
			Status:        StandardActive,
		},
		{
			TypeID:        "CCPA-2024",
			TypeName:      "CCPA Compliance Review",
			PublishedDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			Author:        "David Park",
			Version:       "v1.5.1",
			Status:        StandardActive,
		},
		{
			TypeID:        "ISO27001-2024",
			TypeName:      "ISO 27001:2022 Compliance Review",
			PublishedDate: time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC),
			Author:        "Emily Rodriguez",
			Version:       "v2.0.0",
			Status:        StandardActive,
		},
		{
			TypeID:        "PCI-DSS-2024",
			TypeName:      "PCI DSS v4.0 Compliance Review",
			PublishedDate: time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC),
			Author:        "Michael Chen",
			Version:       "v4.0.1",
			Status:        StandardActive,
		},
		{
			TypeID:        "GDPR-2023",
			TypeName:      "GDPR Compliance Review",
			PublishedDate: time.Date(2023, time.June, 12, 0, 0, 0, 0, time.UTC),
			Author:        "Sarah Johnson",
			Version:       "v2.2.0",
			Status:        StandardDeprecated,
		},
		{
			TypeID:        "SOC2-TYPE2-2023",
			TypeName:      "SOC 2 Type II Compliance Review",
			PublishedDate: time.Date(2023, time.August, 18, 0, 0, 0, 0, time.UTC),
			Author:        "David Park",
			Version:       "v1.7.5",
			Status:        StandardDeprecated,
		},
	}
}

// SeedComplianceTerms returns the full 40-term compliance checklist a
// contract gets reviewed against.
func SeedComplianceTerms() []ComplianceTerm {
	return []ComplianceTerm{
		{
			ID:              "1",
			Heading:         "Data Encryption Requirements",
			Description:     "Contract must specify that all data in transit and at rest is encrypted using industry-standard encryption protocols.",
			OverallAnalysis: "The contract demonstrates comprehensive compliance with encryption requirements across all three critical dimensions: data in transit, data at rest, and key management. Section 4.2 mandates TLS 1.2+ with NIST-approved cipher suites, while Appendix B indicates implementation of the more secure TLS 1.3 protocol.",
			SubPoints:       []SubPoint{
				{
					Heading:     "Encryption in Transit",
					Description: "All data transmitted over networks must use TLS 1.2 or higher with strong cipher suites.",
					Met:         true,
					Analysis:    "The contract exceeds the minimum requirement by implementing TLS 1.3 while explicitly prohibiting deprecated protocols. Section 4.2 establishes the baseline requirement of TLS 1.2+ with NIST-approved cipher suites, while Appendix B confirms actual implementation of TLS 1.3. The explicit prohibition of SSL v2, v3, TLS 1.0, and TLS 1.1 demonstrates a proactive security posture that prevents downgrade attacks.",
					Evidence:    []Evidence{
						{
							Excerpt:     "Section 4.2: All data transmissions between Client and Vendor systems shall utilize Transport Layer Security (TLS) version 1.2 or higher with approved cipher suites as defined by NIST Special Publication 800-52.",
							Explanation: "This clause explicitly requires TLS 1.2 or higher and references NIST standards for cipher suite selection, ensuring strong encryption for data in transit and meeting the requirement for industry-standard protocols.",
						},
						{
							Excerpt:     "Appendix B, Security Controls: Vendor's network architecture implements TLS 1.3 for all external communications and prohibits the use of deprecated protocols including SSL v2, SSL v3, TLS 1.0, and TLS 1.1.",
							Explanation: "This supplementary provision demonstrates the vendor not only meets the minimum TLS 1.2 requirement but actually implements the more secure TLS 1.3 protocol, and explicitly prohibits weak legacy protocols, exceeding the baseline requirement.",
						},
					},
				},
				{
					Heading:     "Encryption at Rest",
					Description: "Stored data must be encrypted using AES-256 or equivalent encryption standards.",
					Met:         true,
					Analysis:    "Section 4.3 provides clear and unambiguous requirements for data-at-rest encryption. The specification of AES-256 meets current industry standards and regulatory expectations. The inclusion of 'or cryptographic algorithms of equivalent or greater strength' provides appropriate flexibility for future cryptographic advancements without requiring contract amendments, while maintaining the baseline security requirement.",
					Evidence:    []Evidence{
						{
							Excerpt:     "Section 4.3: Vendor shall encrypt all Client data at rest using Advanced Encryption Standard (AES) with 256-bit keys or cryptographic algorithms of equivalent or greater strength.",
							Explanation: "The contract specifically mandates AES-256 encryption for data at rest, which is the industry standard and meets the compliance requirement. The provision also allows for equivalent or stronger algorithms, providing flexibility for future standards.",
						},
					},
				},
				{
					Heading:     "Key Management",
					Description: "Encryption keys must be managed securely with proper rotation and access controls.",
					Met:         true,
					Analysis:    "Section 4.4 provides comprehensive key management controls that align with NIST SP 800-57 best practices. The requirement for HSM storage ensures keys are protected by hardware-based security controls that resist extraction attempts. The annual rotation schedule for production keys balances security (limiting key exposure window) with operational stability. Role-based access controls limiting key access to authorized cryptographic administrators implements the principle of least privilege.",
					Evidence:    []Evidence{
						{
							Excerpt:     "Section 4.4: Encryption keys shall be managed in accordance with NIST SP 800-57 guidelines, including secure generation, storage in hardware security modules (HSMs), annual rotation for production keys, and role-based access controls limiting key access to authorized cryptographic administrators.",
							Explanation: "This comprehensive clause addresses all aspects of key management including secure storage in HSMs, regular rotation schedules, and strict access controls. The reference to NIST SP 800-57 ensures industry best practices are followed.",
						},
					},
				},
			},
		},
		{
			ID:              "2",
			Heading:         "Third-Party Data Disclosure",
			Description:     "Contract must explicitly state restrictions on sharing data with third parties.",
			OverallAnalysis: "The contract provides comprehensive coverage of third-party data disclosure requirements with strong protective measures. Section 6.1 establishes clear consent requirements, Section 6.2 ensures timely notification of compelled disclosures, and Sections 6.3-6.5 create robust flow-down provisions for subprocessors.",
			SubPoints:       []SubPoint{
				{
					Heading:     "Prior Written Consent",
					Description: "Third-party sharing requires explicit written approval from the data controller.",
					Met:         true,
				},
				{
					Heading:     "Disclosure Notification",
					Description: "Any data disclosure to third parties must be reported within 24 hours.",
					Met:         true,
				},
				{
					Heading:     "Third-Party Compliance",
					Description: "All third parties must adhere to the same data protection standards.",
					Met:         true,
				},
			},
		},
		{
			ID:          "3",
			Heading:     "Data Breach Notification",
			Description: "Contract must include provisions for timely notification of data breaches.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Notification Timeline",
					Description: "Data breaches must be reported within 72 hours of discovery.",
					Met:         true,
				},
				{
					Heading:     "Breach Documentation",
					Description: "Detailed incident reports must include scope, impact, and remediation steps.",
					Met:         true,
				},
				{
					Heading:     "Affected Party Notification",
					Description: "Process for notifying affected individuals must be clearly defined.",
					Met:         true,
				},
			},
		},
		{
			ID:          "4",
			Heading:     "Data Retention and Deletion",
			Description: "Contract must specify clear data retention periods and secure deletion procedures.",
			SubPoints:   []SubPoint{
				{Heading: "Retention Periods", Met: true},
				{Heading: "Secure Deletion Process", Met: false},
				{Heading: "Deletion Verification", Met: false},
			},
		},
		{
			ID:          "5",
			Heading:     "Access Control and Authentication",
			Description: "Contract must require implementation of role-based access controls and multi-factor authentication.",
			SubPoints:   []SubPoint{
				{Heading: "Role-Based Access Control", Met: true},
				{Heading: "Multi-Factor Authentication", Met: true},
				{Heading: "Access Review and Revocation", Met: true},
			},
		},
		{
			ID:          "6",
			Heading:     "Audit Rights and Compliance Reporting",
			Description: "Contract must grant rights to conduct regular audits and require compliance reporting.",
			SubPoints:   []SubPoint{
				{Heading: "Audit Frequency", Met: true},
				{Heading: "Compliance Documentation", Met: true},
				{Heading: "Remediation Timelines", Met: true},
			},
		},
		{
			ID:          "7",
			Heading:     "Liability and Indemnification",
			Description: "Contract must clearly define liability limits and indemnification clauses.",
			SubPoints:   []SubPoint{
				{Heading: "Liability Caps", Met: true},
				{Heading: "Indemnification Scope", Met: false},
				{Heading: "Insurance Requirements", Met: true},
			},
		},
		{
			ID:          "8",
			Heading:     "Subprocessor Management",
			Description: "Contract must require notification and approval before engaging subprocessors.",
			SubPoints:   []SubPoint{
				{Heading: "Subprocessor Approval", Met: true},
				{Heading: "Subprocessor List", Met: true},
				{Heading: "Subprocessor Compliance", Met: true},
			},
		},
		{
			ID:          "9",
			Heading:     "Business Continuity and Disaster Recovery",
			Description: "Contract must include provisions for business continuity planning and disaster recovery.",
			SubPoints:   []SubPoint{
				{Heading: "Recovery Time Objective", Met: true},
				{Heading: "Recovery Point Objective", Met: true},
				{Heading: "Disaster Recovery Testing", Met: true},
			},
		},
		{
			ID:          "10",
			Heading:     "Termination and Data Portability",
			Description: "Contract must outline procedures for contract termination and data portability.",
			SubPoints:   []SubPoint{
				{Heading: "Data Return Procedures", Met: true},
				{Heading: "Data Deletion Timeline", Met: true},
				{Heading: "Transition Assistance", Met: true},
			},
		},
		{
			ID:          "11",
			Heading:     "Privacy Impact Assessment",
			Description: "Contract must require privacy impact assessments for new processing activities.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Assessment Methodology",
					Description: "Privacy impact assessments must follow recognized frameworks like NIST or ISO.",
					Met:         true,
				},
				{
					Heading:     "Documentation Requirements",
					Description: "Assessment results must be documented and shared with stakeholders.",
					Met:         true,
				},
				{
					Heading:     "Remediation Plans",
					Description: "Identified risks must have documented remediation plans with timelines.",
					Met:         false,
				},
			},
		},
		{
			ID:          "12",
			Heading:     "Vendor Security Training",
			Description: "Contract must mandate regular security awareness training for vendor personnel.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Training Frequency",
					Description: "All personnel must complete security training at least annually.",
					Met:         true,
				},
				{
					Heading:     "Training Content",
					Description: "Training must cover data protection, phishing, and incident response.",
					Met:         true,
				},
				{
					Heading:     "Training Records",
					Description: "Vendor must maintain records of training completion for audit purposes.",
					Met:         true,
				},
			},
		},
		{
			ID:          "13",
			Heading:     "Incident Response Procedures",
			Description: "Contract must define clear incident response and escalation procedures.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Response Team",
					Description: "Dedicated incident response team with defined roles and responsibilities.",
					Met:         true,
				},
				{
					Heading:     "Escalation Process",
					Description: "Clear escalation paths for different severity levels.",
					Met:         true,
				},
				{
					Heading:     "Post-Incident Review",
					Description: "Mandatory post-incident reviews with lessons learned documentation.",
					Met:         true,
				},
			},
		},
		{
			ID:          "14",
			Heading:     "Logging and Monitoring",
			Description: "Contract must require comprehensive logging and security monitoring capabilities.",
			SubPoints:   []SubPoint{
				{
					Heading:     "System Logging",
					Description: "All security-relevant events must be logged with timestamp and user information.",
					Met:         true,
				},
				{
					Heading:     "Log Retention",
					Description: "Logs must be retained for at least 12 months for audit purposes.",
					Met:         true,
				},
				{
					Heading:     "Security Monitoring",
					Description: "24/7 security monitoring with automated alerting for critical events.",
					Met:         true,
				},
			},
		},
		{
			ID:          "15",
			Heading:     "Vulnerability Management",
			Description: "Contract must include comprehensive vulnerability management and patch procedures.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Vulnerability Scanning",
					Description: "Regular automated scanning for vulnerabilities at least monthly.",
					Met:         true,
				},
				{
					Heading:     "Patch Management",
					Description: "Critical patches must be applied within 30 days of release.",
					Met:         true,
				},
				{
					Heading:     "Penetration Testing",
					Description: "Annual third-party penetration testing with findings remediation.",
					Met:         true,
				},
			},
		},
		{
			ID:          "16",
			Heading:     "Change Management",
			Description: "Contract must require formal change management processes for system modifications.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Change Approval Process",
					Description: "All changes must go through formal approval before implementation.",
					Met:         true,
				},
				{
					Heading:     "Change Documentation",
					Description: "Complete documentation of changes including rationale and impact.",
					Met:         true,
				},
				{
					Heading:     "Rollback Procedures",
					Description: "Tested rollback procedures must be in place for all changes.",
					Met:         true,
				},
			},
		},
		{
			ID:          "17",
			Heading:     "Data Classification",
			Description: "Contract must define data classification scheme and handling requirements.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Classification Scheme",
					Description: "Clear data classification levels (e.g., public, internal, confidential, restricted).",
					Met:         true,
				},
				{
					Heading:     "Labeling Requirements",
					Description: "All data must be properly labeled according to classification.",
					Met:         true,
				},
				{
					Heading:     "Handling Procedures",
					Description: "Specific handling procedures for each classification level.",
					Met:         true,
				},
			},
		},
		{
			ID:          "18",
			Heading:     "Physical Security",
			Description: "Contract must address physical security controls for data center facilities.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Access Controls",
					Description: "Badge-based access controls with logging and audit trails.",
					Met:         true,
				},
				{
					Heading:     "Surveillance Systems",
					Description: "24/7 video surveillance with retention of footage for 90 days.",
					Met:         true,
				},
				{
					Heading:     "Environmental Controls",
					Description: "Temperature, humidity, and fire suppression systems.",
					Met:         true,
				},
			},
		},
		{
			ID:          "19",
			Heading:     "Network Security",
			Description: "Contract must specify network security controls and architecture requirements.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Network Segmentation",
					Description: "Logical segmentation of networks by security zone and function.",
					Met:         true,
				},
				{
					Heading:     "Firewall Configuration",
					Description: "Firewalls with deny-by-default rules and regular review.",
					Met:         true,
				},
				{
					Heading:     "Intrusion Detection",
					Description: "IDS/IPS systems monitoring for malicious network activity.",
					Met:         true,
				},
			},
		},
		{
			ID:          "20",
			Heading:     "Software Development Security",
			Description: "Contract must require secure software development lifecycle practices.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Secure Coding Practices",
					Description: "Development teams must follow OWASP secure coding guidelines.",
					Met:         true,
				},
				{
					Heading:     "Code Review",
					Description: "All code must undergo peer review before deployment.",
					Met:         false,
				},
				{
					Heading:     "Security Testing",
					Description: "Static and dynamic security testing integrated into CI/CD pipeline.",
					Met:         true,
				},
			},
		},
		{
			ID:          "21",
			Heading:     "Third-Party Software Components",
			Description: "Contract must address security of third-party and open-source software components.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Vulnerability Tracking",
					Description: "Maintain inventory and track vulnerabilities in all third-party components.",
					Met:         true,
				},
				{
					Heading:     "License Compliance",
					Description: "Ensure all software licenses are properly tracked and compliant.",
					Met:         true,
				},
				{
					Heading:     "Update Management",
					Description: "Regular updates to third-party components to address security issues.",
					Met:         false,
				},
			},
		},
		{
			ID:          "22",
			Heading:     "API Security Standards",
			Description: "Contract must specify security requirements for APIs and integrations.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Authentication",
					Description: "APIs must use OAuth 2.0 or similar modern authentication standards.",
					Met:         true,
				},
				{
					Heading:     "Rate Limiting",
					Description: "Rate limiting must be implemented to prevent abuse and DoS attacks.",
					Met:         true,
				},
				{
					Heading:     "Input Validation",
					Description: "All API inputs must be validated and sanitized to prevent injection attacks.",
					Met:         true,
				},
			},
		},
		{
			ID:          "23",
			Heading:     "Mobile Device Security",
			Description: "Contract must address security requirements for mobile device access.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Device Management",
					Description: "Mobile devices must be enrolled in enterprise mobility management system.",
					Met:         false,
				},
				{
					Heading:     "Device Encryption",
					Description: "Mobile devices accessing company data must have full-disk encryption enabled.",
					Met:         true,
				},
				{
					Heading:     "Remote Wipe",
					Description: "Capability to remotely wipe data from lost or stolen devices.",
					Met:         true,
				},
			},
		},
		{
			ID:          "24",
			Heading:     "Email Security Controls",
			Description: "Contract must define email security and anti-phishing requirements.",
			SubPoints:   []SubPoint{
				{
					Heading:     "SPF and DKIM",
					Description: "Email authentication using SPF, DKIM, and DMARC must be implemented.",
					Met:         true,
				},
				{
					Heading:     "Anti-Phishing",
					Description: "Advanced anti-phishing and malware scanning must be deployed.",
					Met:         true,
				},
				{
					Heading:     "Email Encryption",
					Description: "Sensitive emails must be encrypted in transit and support end-to-end encryption.",
					Met:         false,
				},
			},
		},
		{
			ID:          "25",
			Heading:     "Password Policy Compliance",
			Description: "Contract must enforce strong password and credential management policies.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Password Complexity",
					Description: "Passwords must meet minimum complexity requirements (12+ characters, mixed case).",
					Met:         true,
				},
				{
					Heading:     "Password Rotation",
					Description: "Privileged account passwords must be rotated at least every 90 days.",
					Met:         true,
				},
				{
					Heading:     "Password Storage",
					Description: "Passwords must be stored using approved hashing algorithms (bcrypt, Argon2).",
					Met:         true,
				},
			},
		},
		{
			ID:          "26",
			Heading:     "Cloud Security Requirements",
			Description: "Contract must specify security requirements for cloud service usage.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Cloud Provider Vetting",
					Description: "Cloud providers must meet SOC 2 Type II and ISO 27001 standards.",
					Met:         true,
				},
				{
					Heading:     "Data Residency",
					Description: "Data must be stored in approved geographic regions with documented locations.",
					Met:         false,
				},
				{
					Heading:     "Cloud Configuration",
					Description: "Cloud resources must follow security baseline configurations.",
					Met:         true,
				},
			},
		},
		{
			ID:          "27",
			Heading:     "Endpoint Protection Standards",
			Description: "Contract must require endpoint detection and response capabilities.",
			SubPoints:   []SubPoint{
				{
					Heading:     "EDR Deployment",
					Description: "Endpoint detection and response tools must be deployed on all endpoints.",
					Met:         true,
				},
				{
					Heading:     "Antivirus Coverage",
					Description: "Anti-malware protection must be maintained with daily signature updates.",
					Met:         true,
				},
				{
					Heading:     "Host-Based Firewall",
					Description: "Host-based firewalls must be enabled on all workstations and servers.",
					Met:         true,
				},
			},
		},
		{
			ID:          "28",
			Heading:     "Vendor Risk Assessment",
			Description: "Contract must require ongoing vendor risk assessments and reviews.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Initial Assessment",
					Description: "Comprehensive security assessment must be completed before contract execution.",
					Met:         true,
				},
				{
					Heading:     "Annual Reviews",
					Description: "Vendor security posture must be reassessed at least annually.",
					Met:         true,
				},
				{
					Heading:     "Risk Scoring",
					Description: "Standardized risk scoring methodology must be used.",
					Met:         true,
				},
			},
		},
		{
			ID:          "29",
			Heading:     "Data Privacy Rights",
			Description: "Contract must support data subject rights under privacy regulations.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Access Rights",
					Description: "Individuals must be able to access their personal data upon request.",
					Met:         true,
				},
				{
					Heading:     "Rectification Rights",
					Description: "Process for correcting inaccurate personal data must be defined.",
					Met:         true,
				},
				{
					Heading:     "Erasure Rights",
					Description: "Right to deletion ('right to be forgotten') must be supported.",
					Met:         true,
				},
			},
		},
		{
			ID:          "30",
			Heading:     "Cross-Border Data Transfer",
			Description: "Contract must address requirements for international data transfers.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Transfer Mechanisms",
					Description: "Approved mechanisms for cross-border transfers must be specified.",
					Met:         true,
				},
				{
					Heading:     "Adequacy Decisions",
					Description: "Transfers must comply with adequacy decisions where applicable.",
					Met:         true,
				},
				{
					Heading:     "Standard Contractual Clauses",
					Description: "SCCs or binding corporate rules must be in place for EU transfers.",
					Met:         true,
				},
			},
		},
		{
			ID:          "31",
			Heading:     "Data Protection Impact Assessment",
			Description: "Contract must require DPIAs for high-risk processing activities.",
			SubPoints:   []SubPoint{
				{
					Heading:     "DPIA Requirements",
					Description: "DPIAs must be conducted for processing likely to result in high risk.",
					Met:         true,
				},
				{
					Heading:     "Risk Identification",
					Description: "Systematic identification of risks to data subjects' rights and freedoms.",
					Met:         true,
				},
				{
					Heading:     "Mitigation Measures",
					Description: "Documented measures to address identified risks.",
					Met:         true,
				},
			},
		},
		{
			ID:          "32",
			Heading:     "Consent Management",
			Description: "Contract must define processes for managing user consent.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Consent Collection",
					Description: "Clear, affirmative consent must be obtained before processing.",
					Met:         true,
				},
				{
					Heading:     "Consent Withdrawal",
					Description: "Easy mechanism for users to withdraw consent at any time.",
					Met:         true,
				},
				{
					Heading:     "Consent Records",
					Description: "Records of consent must be maintained with timestamp and scope.",
					Met:         true,
				},
			},
		},
		{
			ID:          "33",
			Heading:     "Data Minimization",
			Description: "Contract must enforce data minimization principles.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Purpose Limitation",
					Description: "Data must be collected only for specified, legitimate purposes.",
					Met:         true,
				},
				{
					Heading:     "Storage Limitation",
					Description: "Data must not be kept longer than necessary.",
					Met:         true,
				},
				{
					Heading:     "Collection Limitation",
					Description: "Only minimum necessary data should be collected.",
					Met:         true,
				},
			},
		},
		{
			ID:          "34",
			Heading:     "Backup and Recovery",
			Description: "Contract must include comprehensive backup and recovery procedures.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Backup Frequency",
					Description: "Daily incremental and weekly full backups must be performed.",
					Met:         true,
				},
				{
					Heading:     "Backup Testing",
					Description: "Quarterly testing of backup restoration procedures.",
					Met:         true,
				},
				{
					Heading:     "Recovery Procedures",
					Description: "Documented and tested recovery procedures for all systems.",
					Met:         true,
				},
			},
		},
		{
			ID:          "35",
			Heading:     "Social Engineering Defense",
			Description: "Contract must require defenses against social engineering attacks.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Security Awareness",
					Description: "Regular security awareness training covering social engineering tactics.",
					Met:         true,
				},
				{
					Heading:     "Simulated Phishing",
					Description: "Quarterly simulated phishing campaigns must be conducted.",
					Met:         true,
				},
				{
					Heading:     "Reporting Mechanisms",
					Description: "Easy-to-use mechanisms for reporting suspected social engineering attempts.",
					Met:         true,
				},
			},
		},
		{
			ID:          "36",
			Heading:     "Intellectual Property Protection",
			Description: "Contract must define protections for intellectual property and trade secrets.",
			SubPoints:   []SubPoint{
				{
					Heading:     "IP Ownership",
					Description: "Clear ownership of intellectual property created under the contract.",
					Met:         true,
				},
				{
					Heading:     "Confidentiality Obligations",
					Description: "Strong confidentiality clauses protecting proprietary information.",
					Met:         true,
				},
				{
					Heading:     "Non-Compete Provisions",
					Description: "Appropriate non-compete and non-solicitation provisions where applicable.",
					Met:         false,
				},
			},
		},
		{
			ID:          "37",
			Heading:     "Regulatory Compliance Reporting",
			Description: "Contract must require compliance with applicable regulations and reporting.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Compliance Certifications",
					Description: "Current certifications for applicable regulations must be maintained.",
					Met:         true,
				},
				{
					Heading:     "Regulatory Changes",
					Description: "Vendor must notify of changes in compliance status or regulatory environment.",
					Met:         true,
				},
				{
					Heading:     "Compliance Documentation",
					Description: "Evidence of compliance must be provided upon request.",
					Met:         true,
				},
			},
		},
		{
			ID:          "38",
			Heading:     "Supply Chain Security",
			Description: "Contract must address security of the software and hardware supply chain.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Vendor Vetting",
					Description: "Sub-vendors and suppliers must undergo security assessments.",
					Met:         false,
				},
				{
					Heading:     "Software Bill of Materials",
					Description: "SBOM must be provided for all software components.",
					Met:         false,
				},
				{
					Heading:     "Hardware Integrity",
					Description: "Hardware must be sourced from trusted suppliers with chain of custody.",
					Met:         true,
				},
			},
		},
		{
			ID:          "39",
			Heading:     "Zero Trust Architecture",
			Description: "Contract must support zero trust security principles and implementation.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Identity Verification",
					Description: "Continuous verification of user and device identity before granting access.",
					Met:         true,
				},
				{
					Heading:     "Least Privilege Access",
					Description: "Access must be granted based on least privilege and need-to-know principles.",
					Met:         true,
				},
				{
					Heading:     "Micro-Segmentation",
					Description: "Network micro-segmentation to limit lateral movement.",
					Met:         false,
				},
			},
		},
		{
			ID:          "40",
			Heading:     "Decommissioning and Asset Disposal",
			Description: "Contract must define secure procedures for decommissioning and asset disposal.",
			SubPoints:   []SubPoint{
				{
					Heading:     "Data Sanitization",
					Description: "Media must be sanitized using NIST 800-88 guidelines before disposal.",
					Met:         true,
				},
				{
					Heading:     "Certificate of Destruction",
					Description: "Certificates of destruction must be provided for all disposed assets.",
					Met:         true,
				},
				{
					Heading:     "Asset Tracking",
					Description: "Complete inventory and tracking of assets through end-of-life.",
					Met:         true,
				},
			},
		},
	}
}
