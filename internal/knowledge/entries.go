package knowledge

import "time"

// Entry is one editable knowledge-base document.
type Entry struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Version   int       `json:"version"`
}

// promptCategoryOrder fixes the section order of the full-knowledge prompt
// block.
var promptCategoryOrder = []string{
	"services",
	"pricing",
	"policies",
	"areas",
	"scheduling",
	"equipment",
	"customer-service",
	"seasonal",
	"emergency",
	"general",
}

// fallbackKnowledge is used when the knowledge store is empty or
// unreachable. Short, safe summaries only.
var fallbackKnowledge = map[string]string{
	"services":   "Window cleaning (4-weekly, 8-weekly), gutter clearing, gutter & fascia cleaning, pressure washing, conservatory cleaning, solar panel cleaning",
	"pricing":    "Pricing based on property size and service frequency. Contact for quote.",
	"policies":   "All work guaranteed for 48 hours. Weather dependent service.",
	"areas":      "Serving Bath, Bristol, Keynsham, Saltford, Paulton, Midsomer Norton, Radstock and surrounding Somerset areas",
	"scheduling": "We work Monday to Friday, 8am-5pm, with Saturday availability for larger jobs. Weather dependent.",
	"general":    "Professional window cleaning service covering Somerset areas. Contact info@somersetwindowcleaning.co.uk for quotes.",
}

// builtinEntries seeds a fresh store with the operator-curated documents.
func builtinEntries() []Entry {
	seeded := time.Date(2025, 9, 9, 16, 40, 0, 0, time.UTC)

	return []Entry{
		{
			ID:       "kb_customer_service",
			Category: "customer-service",
			Content: `CUSTOMER INFORMATION COLLECTION:

Essential Information Required:
- Full name
- Complete address
- Email address
- Mobile phone number
- Postcode (required for text messages)
- Preferred notification method (email or mobile phone)

COMMUNICATION COST MANAGEMENT:
- Keep text message conversations SHORT due to cost
- Email has no additional cost - use freely for detailed communication
- Text messages MUST sign off with "Many thanks SWC" to keep costs down
- Prefer email for detailed quotes and explanations

UK SPELLING REQUIREMENTS:
- ALWAYS use UK spelling in all responses
- Examples: colour (not color), realise (not realize), centre (not center), organisation (not organization)
- Use UK terminology: postcode (not zip code), mobile (not cell phone), pavement (not sidewalk)
- Date format: DD/MM/YYYY or written as "1st January 2025"
- Currency: £ symbol, pounds sterling

GOOGLE REVIEWS:
- When customers give praise for work carried out, ALWAYS ask for Google review
- This is important for business growth and reputation`,
			Timestamp: seeded,
			Version:   1,
		},
		{
			ID:       "kb_services",
			Category: "services",
			Content: `SOMERSET WINDOW CLEANING SERVICES:

Window Cleaning:
- 4-weekly service
- 8-weekly service
- 12-weekly service (charge more)
- One-off cleans (charge more than regular service)

Gutter Services - IMPORTANT: Two different services:
1. GUTTER CLEARING - Internal parts of gutters only
2. GUTTER AND FASCIA CLEANING - External parts of gutters, fascia, and soffit cleaning

CRITICAL: When customer mentions "gutter cleaning" - ALWAYS clarify which service they require as they are completely different services with different pricing.

Internal Window Cleaning:
- Try NOT to offer internal window cleaning
- Only offer if customer specifically requests it
- Can be done on customer request`,
			Timestamp: seeded,
			Version:   1,
		},
		{
			ID:       "kb_pricing",
			Category: "pricing",
			Content: `PRICING GUIDELINES:

Property Assessment Required:
- Number of bedrooms
- Type of property (terraced, semi-detached, detached, etc.)
- Does property have conservatory?

IMPORTANT PRICING NOTES:
- Prices based on STANDARD property sizes
- If property is much bigger than expected, we reserve right to charge more
- Any price increases must be agreed with customer BEFOREHAND
- Never surprise customers with unexpected charges

Service Frequency Pricing:
- 4-weekly: Standard rates
- 8-weekly: Standard rates
- 12-weekly: Charge MORE than standard
- One-off cleans: Charge MORE than regular service (significantly more)

Front-Only Service:
- When we can't access back (locked gates, dogs, etc.), we do front only
- Charge approximately 2/3 of full clean price
- Still need to travel to property so can't be free
- Ensure back windows done on next visit`,
			Timestamp: seeded,
			Version:   1,
		},
		{
			ID:       "kb_policies",
			Category: "policies",
			Content: `SERVICE POLICIES:

WORK GUARANTEE (FOR COMPLAINT SITUATIONS ONLY):
- All work guaranteed for 48 HOURS
- If customer reports issues within 48 hours, we return to resolve
- DO NOT mention guarantee in initial customer quotes/communication
- Only mention when handling complaints or service issues

COMPLAINT HANDLING:
- ALWAYS apologise first
- Offer immediate solution
- Most common complaint: "You missed the back windows"
- THEN mention 48-hour guarantee policy

MISSED BACK WINDOWS - Common Reasons:
- Gate was locked
- Dog present in back garden
- Access issues
- Safety concerns

When backs are missed:
- Charge approximately 2/3 of full price for front-only service
- Explain why backs couldn't be done
- Guarantee backs will be done on next visit

INITIAL CUSTOMER COMMUNICATION:
- Focus on services, pricing, and scheduling
- Keep responses concise and sales-focused
- Do not over-complicate with policies unless relevant`,
			Timestamp: seeded,
			Version:   1,
		},
		{
			ID:       "kb_general",
			Category: "general",
			Content: `GENERAL BUSINESS PRACTICES:

Customer Retention Strategy:
- Present 4-weekly and 8-weekly options neutrally
- DO NOT hard sell or push 4-weekly over 8-weekly
- Let customer choose what works for them
- Present both options professionally without bias

Service Quality Management:
- Always deliver on promises
- If access issues prevent full service, communicate clearly
- Maintain professional communication
- Address complaints promptly and professionally

Cost Management:
- Text messages cost money - keep them short
- Use email for detailed communication
- Standard text sign-off: "Many thanks SWC"

Reputation Management:
- Request Google reviews after praise
- Maintain high service standards
- Quick complaint resolution
- Professional communication always`,
			Timestamp: seeded,
			Version:   1,
		},
		{
			ID:       "kb_scheduling",
			Category: "scheduling",
			Content: `SCHEDULING SYSTEM:

4-WEEK ROTATION CYCLE:

WEEK 1 - NORTH:
- Monday: BS40, BS48, BS49, BS22, BS23, BS24, BS21 (Weston, Backwell, Blagdon, Yatton, Clevedon)
- Tuesday: BS25, BS29 (Banwell, Winscombe)
- Wednesday: BS26 (Axbridge)
- Thursday: BS26, BS27 (Axbridge, Cheddar)
- Friday: BS27 (Cheddar)

WEEK 2 - EAST:
- Monday: BA7, BA9, BA10, BA11, BA8 (Wincanton, Bruton, Castle Cary, Frome, Templecombe)
- Tuesday: BS39, BA3, BA4 (Paulton, Radstock, Shepton)
- Wednesday: BA5, BA4 (Shepton, Wells)
- Thursday: BA5 (Wells)
- Friday: BA5 (Wells)

WEEK 3 - SOUTH:
- Monday: TA18, TA19, TA20, BA22, TA17, TA12, TA13, TA14, DT9 (Yeovil, Ilminster, Chard, Crewkerne)
- Tuesday: TA10, TA11 (Langport, Somerton)
- Wednesday: TA10, TA11 (Langport, Somerton)
- Thursday: BA6 (Glastonbury)
- Friday: BA6 (Glastonbury)

WEEK 4 - WEST:
- Monday: TA7, TA6, TA2, TA3, TA9, TA8, TA1 (Bridgwater, Taunton, Mark, Highbridge)
- Tuesday: BS28 (Wedmore)
- Wednesday: BS28 (Wedmore)
- Thursday: BS28, BA6 (Wedmore, Meare only)
- Friday: BA16 (Street)

CUSTOMER COMMUNICATION GUIDELINES:
- DO NOT mention rotation names (North, East, South, West) to customers
- Keep scheduling responses general: "We service your area regularly"
- For 4-weekly customers: served every cycle
- For 8-weekly customers: served every 2nd cycle

SERVICE FREQUENCY OFFERING:
- ONLY offer 4-weekly and 8-weekly initially
- Only mention 12-weekly and one-off if customer brings them up`,
			Timestamp: seeded,
			Version:   1,
		},
	}
}
