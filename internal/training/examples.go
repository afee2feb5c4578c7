package training

import "time"

// builtinExamples is the curated catalogue of real Somerset Window Cleaning
// conversations. Messages and responses are kept verbatim; the similarity
// matcher depends on their exact wording.
func builtinExamples() []Example {
	loaded := time.Date(2025, 3, 26, 0, 0, 0, 0, time.UTC)

	return []Example{
		{
			ID:               "training_praise_review",
			CustomerMessage:  "Hi, I have left you a 5 star review. Easy to do and I meant every word. SMS sent by Gail Ward (Somerset Window Cleaning)",
			ExpectedResponse: "Thank you so much for your wonderful 5-star review, Gail! We really appreciate your kind words and your continued support—it means a lot to us. We'd be happy to continue providing excellent service for your regular window cleaning. Many thanks from all the team at Somerset Window Cleaning!",
			Context:          "Customer praise - 5 star review received",
			Type:             ExamplePraise,
			Quality:          QualityExcellent,
			Tags:             []string{"review", "praise", "gail_ward", "existing_customer", "5_star"},
			BusinessLessons: []string{
				"Always thank customers for positive reviews",
				"Acknowledge their continued loyalty",
				"Keep response warm but professional",
				"Reference ongoing service relationship",
			},
			CreatedAt: loaded,
		},
		{
			ID: "training_sms_history",
			CustomerMessage: `SMSReply from Gail Ward
Hi, I have left you a 5 star review. Easy to do and I meant every word.
SMS sent by Dan (Somerset Window Cleaning)
Hi Gail. Thank you so much for your 5-star review! We really
Jan 31 15:34
delivery details
SMSReply from Gail Ward
March 26th 2025
SMS sent by Dan (Somerset Window Cleaning)
Hi Gail, Just a quick reminder that your window clean ** £3 Discount
** appointment is scheduled within the next two working days. Many
thanks. Somerset Window Cleaning`,
			ExpectedResponse: "INTERNAL ANALYSIS: This is SMS conversation history between Somerset Window Cleaning and customer Gail Ward. This appears to be a business review of communication patterns, not a customer inquiry requiring a response. The conversation shows: positive customer relationship, 5-star review received, discount applied (£3), regular service schedule maintained.",
			Context:          "Internal SMS conversation review",
			Type:             ExampleInternalData,
			Quality:          QualityExcellent,
			Tags:             []string{"sms_history", "gail_ward", "internal_review", "business_data", "no_response_needed"},
			BusinessLessons: []string{
				"SMS conversation histories are internal business data",
				"These should trigger analysis, not customer responses",
				"Look for communication patterns and customer satisfaction indicators",
				"Note successful service delivery patterns",
			},
			CreatedAt: loaded,
		},
		{
			ID:               "training_new_inquiry",
			CustomerMessage:  "Hi, I would like a quote for regular window cleaning for my 3-bedroom house in Weston-super-Mare. What are your prices and when are you next available?",
			ExpectedResponse: "Hello! Thank you for your enquiry about window cleaning services. We'd be delighted to provide regular window cleaning for your 3-bedroom house in Weston-super-Mare, which is well within our service area. We offer cleaning on either a 4-weekly or 8-weekly basis to suit your preferences. For an accurate quote, we'd need to visit and assess your property, taking into account factors like accessibility and any special requirements. Please email us at info@somersetwindowcleaning.co.uk or call 07123 456789 to arrange a free, no-obligation quote. We're currently booking new customers and would be happy to discuss availability that works for you. Looking forward to hearing from you!",
			Context:          "New customer inquiry - 3 bed house, Weston-super-Mare, pricing and availability",
			Type:             ExampleCustomerInquiry,
			Quality:          QualityExcellent,
			Tags:             []string{"new_customer", "weston_super_mare", "quote_request", "3_bedroom", "pricing", "availability"},
			BusinessLessons: []string{
				"Confirm service area coverage",
				"Mention service frequency options",
				"Explain quote process",
				"Provide clear contact information",
				"Indicate availability for new customers",
			},
			CreatedAt: loaded,
		},
		{
			ID:               "training_complaint_missed",
			CustomerMessage:  "Hi, I noticed you missed the back windows during the last clean. They're still quite dirty. Can you please address this?",
			ExpectedResponse: "I sincerely apologise for missing the back windows during your recent clean - this isn't the standard you should expect from us. We'll arrange to return within the next two working days to complete the back windows at no additional charge. This is covered under our 48-hour service guarantee. Please let me know if there were any access issues (locked gates, dogs, etc.) that we should be aware of for future visits. Thank you for bringing this to our attention, and we appreciate your patience while we put this right.",
			Context:          "Service complaint - missed back windows",
			Type:             ExampleComplaint,
			Quality:          QualityExcellent,
			Tags:             []string{"complaint", "missed_windows", "back_windows", "service_issue", "48_hour_guarantee"},
			BusinessLessons: []string{
				"Always apologise first",
				"Offer immediate solution",
				"Mention 48-hour guarantee for complaints",
				"Ask about access issues",
				"Thank customer for feedback",
			},
			CreatedAt: loaded,
		},
		{
			ID:               "training_existing_schedule",
			CustomerMessage:  "Hi, can you tell me which day you'll be coming next week for the windows? Thanks",
			ExpectedResponse: "Hello! Thanks for getting in touch. I'll check our schedule and confirm your cleaning day for next week. We typically provide service within your regular rotation, and I'll send you a text message confirmation once I've verified the exact day with our team. If you need to make any special arrangements for access, please let me know. Many thanks!",
			Context:          "Existing customer asking about schedule",
			Type:             ExampleExistingCustomer,
			Quality:          QualityGood,
			Tags:             []string{"existing_customer", "schedule_inquiry", "next_week", "access_arrangements"},
			BusinessLessons: []string{
				"Acknowledge regular customer relationship",
				"Offer to confirm specific timing",
				"Mention text message system",
				"Ask about access requirements",
			},
			CreatedAt: loaded,
		},
	}
}
