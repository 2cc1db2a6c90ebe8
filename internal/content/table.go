// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

var defaultServices = []string{
	"Consultation Services",
	"Project Management",
	"Custom Solutions",
	"Maintenance & Support",
	"Training & Education",
	"Emergency Response",
}

var defaultTestimonials = []Testimonial{
	{Text: "Working with {business} was a fantastic experience. Professional, reliable, and the results speak for themselves. I couldn't be happier!", Author: "Alex Morgan"},
	{Text: "Excellent service from start to finish. They listened to our needs and delivered beyond expectations.", Author: "Chris Taylor"},
	{Text: "Professional, punctual, and fair pricing. I've found my go-to service provider!", Author: "Pat Johnson"},
	{Text: "The team was courteous, efficient, and did outstanding work. Highly recommended!", Author: "Jordan Smith"},
}

var fallback = Entry{
	Industry:        IndustryOther,
	Tagline:         "Professional Services",
	Headline:        "Quality Service You Can Trust",
	Promise:         "Quality service and exceptional results you can count on.",
	DefaultServices: defaultServices,
	Testimonials:    defaultTestimonials,
	AutoResponse:    "Thank you for contacting {business}! We appreciate your interest in our services. We'll respond within 24 hours with the information you need.",
}

var plumbing = Entry{
	Industry: IndustryPlumbing,
	Tagline:  "Expert Plumbing Solutions",
	Headline: "Expert Plumbing Services You Can Trust",
	Promise:  "Fast, reliable plumbing repairs and installations. Available 24/7 for emergencies.",
	DefaultServices: []string{
		"Emergency Plumbing Repairs",
		"Drain Cleaning",
		"Water Heater Installation",
		"Leak Detection & Repair",
		"Bathroom Remodeling",
		"Pipe Replacement",
	},
	Testimonials: []Testimonial{
		{Text: "{business} saved the day! Our pipe burst at 2 AM and they were here within an hour. Professional, courteous, and fair pricing. Highly recommend!", Author: "Sarah Johnson"},
		{Text: "Fast service and honest pricing. They fixed our water heater and explained everything clearly.", Author: "Mike Chen"},
		{Text: "Best plumber in town! They renovated our entire bathroom and the results are amazing.", Author: "Emily Davis"},
		{Text: "Reliable and professional. They always arrive on time and get the job done right.", Author: "Robert Williams"},
	},
	AutoResponse: "Thank you for contacting {business}! We understand plumbing issues can't wait. We'll get back to you within an hour with your free quote and available appointment times.",
}

var electrical = Entry{
	Industry: IndustryElectrical,
	Tagline:  "Reliable Electrical Services",
	Headline: "Professional Electrical Solutions",
	Promise:  "Safe, code-compliant electrical work by licensed professionals.",
	DefaultServices: []string{
		"Electrical Repairs",
		"Panel Upgrades",
		"Lighting Installation",
		"Outlet & Switch Replacement",
		"Safety Inspections",
		"Emergency Services",
	},
	Testimonials: []Testimonial{
		{Text: "Had {business} upgrade our electrical panel. They were professional, clean, and completed the work ahead of schedule. Very impressed!", Author: "David Martinez"},
		{Text: "Excellent work on our home rewiring project. Safety-focused and detail-oriented.", Author: "Lisa Anderson"},
		{Text: "They installed our EV charger perfectly. Great communication throughout the project.", Author: "James Wilson"},
		{Text: "Fair pricing and quality work. They fixed issues other electricians missed.", Author: "Maria Garcia"},
	},
	AutoResponse: "Thank you for contacting {business}! Electrical safety is our priority. We'll respond within an hour with your free estimate and next available service time.",
}

var construction = Entry{
	Industry: IndustryConstruction,
	Tagline:  "Quality Construction & Renovation",
	Headline: "Building Your Dreams, One Project at a Time",
	Promise:  "From concept to completion, we deliver quality construction on time and on budget.",
	DefaultServices: []string{
		"New Construction",
		"Renovations",
		"Kitchen Remodeling",
		"Bathroom Remodeling",
		"Additions",
		"General Contracting",
	},
	Testimonials: defaultTestimonials,
	AutoResponse: "Thank you for contacting {business}! We appreciate the opportunity to discuss your construction project. We'll get back to you within 24 hours with a detailed quote.",
}

var landscaping = Entry{
	Industry: IndustryLandscaping,
	Tagline:  "Beautiful Outdoor Spaces",
	Headline: "Transform Your Outdoor Space",
	Promise:  "Creating beautiful, sustainable outdoor environments that enhance your property.",
	DefaultServices: []string{
		"Lawn Care & Maintenance",
		"Garden Design",
		"Tree & Shrub Care",
		"Hardscape Installation",
		"Irrigation Systems",
		"Seasonal Cleanup",
	},
	Testimonials: []Testimonial{
		{Text: "{business} transformed our backyard into an oasis! Their design vision and attention to detail exceeded our expectations.", Author: "Jennifer Brown"},
		{Text: "Our lawn has never looked better. They truly care about their work and it shows.", Author: "Tom Phillips"},
		{Text: "Professional team that delivers on their promises. Our garden is now the envy of the neighborhood.", Author: "Susan Lee"},
		{Text: "Reliable weekly maintenance and beautiful seasonal plantings. Highly recommend!", Author: "Mark Thompson"},
	},
	AutoResponse: "Thank you for contacting {business}! We're excited to help transform your outdoor space. We'll respond within 24 hours with your free consultation and estimate.",
}

var automotive = Entry{
	Industry:        IndustryAutomotive,
	Tagline:         "Professional Auto Services",
	Headline:        "Keep Your Vehicle Running Smoothly",
	Promise:         "Honest service, fair prices, and expert technicians you can count on.",
	DefaultServices: defaultServices,
	Testimonials:    defaultTestimonials,
	AutoResponse:    "Thank you for contacting {business}! We know reliable transportation is essential. We'll get back to you within an hour with service availability and pricing.",
}

var cleaning = Entry{
	Industry:        IndustryCleaning,
	Tagline:         "Spotless Cleaning Solutions",
	Headline:        "A Cleaner Space, A Better Life",
	Promise:         "Professional cleaning services that give you more time for what matters.",
	DefaultServices: defaultServices,
	Testimonials:    defaultTestimonials,
	AutoResponse:    "Thank you for contacting {business}! We'll get back to you within 24 hours with a free quote for your space.",
}

var retail = Entry{
	Industry:        IndustryRetail,
	Tagline:         "Your Local Shopping Destination",
	Headline:        "Quality Products, Exceptional Service",
	Promise:         "Find everything you need with friendly service and competitive prices.",
	DefaultServices: defaultServices,
	Testimonials:    defaultTestimonials,
	AutoResponse:    "Thank you for contacting {business}! We appreciate your interest. We'll get back to you within 24 hours with product availability and pricing information.",
}

var healthcare = Entry{
	Industry:        IndustryHealthcare,
	Tagline:         "Caring Healthcare Services",
	Headline:        "Your Health, Our Priority",
	Promise:         "Compassionate care and modern treatments for your health and wellness.",
	DefaultServices: defaultServices,
	Testimonials:    defaultTestimonials,
	AutoResponse:    "Thank you for contacting {business}! Your health is our priority. We'll respond within 24 hours to schedule your appointment or answer your questions.",
}

var restaurant = Entry{
	Industry:        IndustryRestaurant,
	Tagline:         "Fresh Food, Warm Hospitality",
	Headline:        "Authentic Dining Experience",
	Promise:         "We create memorable dining experiences for food lovers in our community.",
	DefaultServices: defaultServices,
	Testimonials:    defaultTestimonials,
	AutoResponse:    "Thank you for contacting {business}! We look forward to serving you. We'll respond within a few hours to confirm your reservation or answer your questions.",
}

var professionalServices = Entry{
	Industry:        IndustryProfessionalServices,
	Tagline:         "Professional Excellence",
	Headline:        "Excellence in Every Detail",
	Promise:         "Dedicated professionals committed to your success.",
	DefaultServices: defaultServices,
	Testimonials:    defaultTestimonials,
	AutoResponse:    "Thank you for contacting {business}! We appreciate the opportunity to work with you. We'll get back to you within 24 hours with detailed information.",
}
