package catalog

// Default returns the built-in storefront catalog. Every call returns a fresh
// copy so callers cannot alias each other's slices.
func Default() Catalog {
	return Catalog{
		Brand: Brand{
			Name:    "lumen",
			Mark:    "lumen.",
			Tagline: "Objects for calm and considered living.",
		},
		Navigation: []NavLink{
			{Href: "#" + AnchorFeatured, Label: "Featured"},
			{Href: "#" + AnchorCollections, Label: "Collections"},
			{Href: "#" + AnchorHighlights, Label: "Highlights"},
			{Href: "#" + AnchorStories, Label: "Stories"},
		},
		Hero: Hero{
			Eyebrow:  "Elevated daily living",
			Headline: "Modern pieces that move with the rhythm of your home.",
			Subhead: "Discover tactile technology, sculptural lighting, and calming atmospheres. " +
				"Our award-winning designers bring intentionality to every detail—so you can " +
				"create spaces that are as functional as they are inspiring.",
			PrimaryCTA:   Link{Href: "#" + AnchorFeatured, Label: "Shop the collection"},
			SecondaryCTA: Link{Href: "#" + AnchorStories, Label: "Explore our story"},
			Stats: []Stat{
				{Label: "Community", Value: "120k+"},
				{Label: "Materials diverted", Value: "18 tons"},
				{Label: "Satisfaction", Value: "4.9 / 5"},
			},
			Image: Image{
				URL:    "https://images.unsplash.com/photo-1519710164239-da123dc03ef4?auto=format&fit=crop&w=1600&q=80",
				Alt:    "Living room with modern interior products",
				Width:  900,
				Height: 1050,
			},
		},
		Featured: FeaturedCopy{
			Title: "Featured pieces",
			Intro: "Handpicked essentials that pair intuitive technology with a calm, " +
				"tactile finish—designed to be used every day.",
			ViewAll: &Link{Href: "#" + AnchorCollections, Label: "View all products"},
		},
		Products: []Product{
			{
				ID:          1,
				Name:        "Aether Series Headphones",
				Description: "Studio-grade sound, adaptive noise cancellation, and 36-hour battery life.",
				Price:       "$249",
				Image:       "https://images.unsplash.com/photo-1511379938547-c1f69419868d?auto=format&fit=crop&w=1200&q=80",
				Badges:      []string{"New Arrival"},
				Colors:      []string{"#1c1c20", "#e0d6c8", "#f5f5f5"},
			},
			{
				ID:          2,
				Name:        "Prism Smart Speaker",
				Description: "Immersive 360° sound with voice control, room calibration, and ambient lighting.",
				Price:       "$179",
				Image:       "https://images.unsplash.com/photo-1512446733611-9099a758e0f9?auto=format&fit=crop&w=1200&q=80",
				Badges:      []string{"Best Seller"},
				Colors:      []string{"#0f172a", "#f97316", "#38bdf8"},
			},
			{
				ID:          3,
				Name:        "Nebula Air Purifier",
				Description: "Triple-layer HEPA filtration with smart monitoring for healthier spaces.",
				Price:       "$219",
				Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=1200&q=80",
				Colors:      []string{"#f1f5f9", "#64748b", "#0f172a"},
			},
			{
				ID:          4,
				Name:        "Velar Modular Lamp",
				Description: "Sculptural lighting that adapts to your mood with 64 ambient presets.",
				Price:       "$129",
				Image:       "https://images.unsplash.com/photo-1493663284031-b7e3aefcae8e?auto=format&fit=crop&w=1200&q=80",
				Badges:      []string{"Limited"},
				Colors:      []string{"#fb923c", "#0369a1", "#1e293b"},
			},
		},
		Highlights: []Highlight{
			{
				Title:       "Complimentary 2-Day Shipping",
				Description: "Fast, carbon-neutral delivery on every order with easy tracking.",
			},
			{
				Title:       "45-Day Risk-Free Trial",
				Description: "Live with your purchase before you commit. Free returns and exchanges.",
			},
			{
				Title:       "Responsible Design",
				Description: "Recycled materials and fair manufacturing across our entire lineup.",
			},
		},
		Collections: []Collection{
			{
				Title:       "Calm Interiors",
				Description: "Soft palettes and organic forms designed to restore balance.",
				Image:       "https://images.unsplash.com/photo-1616628188505-404b4be1524a?auto=format&fit=crop&w=1600&q=80",
			},
			{
				Title:       "Future Sound",
				Description: "Clean geometry meets responsive controls for pure listening.",
				Image:       "https://images.unsplash.com/photo-1484704849700-f032a568e944?auto=format&fit=crop&w=1600&q=80",
			},
		},
		Story: StoryPanel{
			JournalTitle: "Journal",
			PullQuote:    "“Listening to our community shapes everything we create.”",
			Body: "We collaborate with artisans, engineers, and sustainability experts to ensure " +
				"each collection has a light footprint and a lasting impact. Thoughtful design is " +
				"our way of honoring daily rituals.",
		},
		Journal: []JournalEntry{
			{
				Title:   "Our Design Process",
				Excerpt: "Go behind the scenes with our product team to see how new collections start as sketches before becoming reality.",
				Date:    "May 28, 2024",
				Link:    "#",
			},
			{
				Title:   "Living with Less, Living Better",
				Excerpt: "Practical ways to curate a mindful home with pieces that spark joy and serve a purpose.",
				Date:    "May 14, 2024",
				Link:    "#",
			},
		},
		Testimonials: []Testimonial{
			{
				Quote: "The products feel curated around how people actually live. Each piece elevates my space without overwhelming it.",
				Name:  "Lena Hernandez",
				Role:  "Interior Designer",
			},
			{
				Quote: "Every detail feels intentional—from packaging to performance. Easily my favorite destination for thoughtful tech.",
				Name:  "Arjun Patel",
				Role:  "Sound Producer",
			},
		},
		Newsletter: NewsletterCopy{
			Title: "Stay inspired with lumen.",
			Body: "Exclusive previews, early access to new drops, and stories on creating " +
				"mindful environments—delivered once a week.",
			InputLabel:  "Email address",
			Placeholder: "you@example.com",
			Submit:      "Join the list",
		},
		Footer: Footer{
			Groups: []FooterGroup{
				{Title: "Shop", Links: []Link{
					{Href: "#" + AnchorFeatured, Label: "Best sellers"},
					{Href: "#" + AnchorCollections, Label: "Collections"},
					{Href: "#" + AnchorHighlights, Label: "Guarantees"},
				}},
				{Title: "Company", Links: []Link{
					{Href: "#" + AnchorStories, Label: "Journal"},
					{Href: "#", Label: "Careers"},
					{Href: "#", Label: "Sustainability"},
				}},
				{Title: "Support", Links: []Link{
					{Href: "#", Label: "Contact"},
					{Href: "#", Label: "Shipping & returns"},
					{Href: "#", Label: "Warranty"},
				}},
			},
			Legal: []Link{
				{Href: "#", Label: "Privacy"},
				{Href: "#", Label: "Terms"},
				{Href: "#", Label: "Accessibility"},
			},
		},
	}
}
