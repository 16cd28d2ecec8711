package content

import "time"

// Set is a complete body of content.
type Set struct {
	Articles  []Article
	Headlines []Headline
}

// Mock returns the built-in data set. Ids are namespaced by block so a
// bookmark on a feed article never collides with a card or headline.
func Mock() Set {
	h := time.Hour
	return Set{
		Articles: []Article{
			{
				ID: "feed-1", Kind: KindFeed, Category: "technology", Age: 2 * h, Source: "TechCrunch",
				Title:   "OpenAI Announces GPT-5 with Revolutionary Multimodal Capabilities",
				Summary: "OpenAI has unveiled GPT-5, featuring unprecedented multimodal understanding and generation capabilities that can process text, images, audio, and video simultaneously.",
				Points: []string{
					"GPT-5 can process and generate content across text, images, audio, and video",
					"New model shows 40% improvement in reasoning capabilities over GPT-4",
					"Reduced hallucination rate by 65% compared to previous models",
					"API access will be available to developers next month",
					"Pricing structure remains similar to GPT-4 with volume discounts",
				},
			},
			{
				ID: "feed-2", Kind: KindFeed, Category: "technology", Age: 5 * h, Source: "Nature",
				Title:   "Google's DeepMind Solves Protein Folding for All Known Proteins",
				Summary: "Google's DeepMind has announced that its AlphaFold system has now predicted the structure of virtually all known proteins, revolutionizing drug discovery and biological research.",
				Points: []string{
					"AlphaFold has mapped over 200 million protein structures",
					"Data is freely available to researchers worldwide",
					"Expected to accelerate drug discovery by 60%",
					"System uses less computational resources than previous versions",
					"Collaboration with pharmaceutical companies already underway",
				},
			},
			{
				ID: "feed-3", Kind: KindFeed, Category: "technology", Age: 8 * h, Source: "Electrek",
				Title:   "Tesla Unveils New AI-Powered Home Energy Management System",
				Summary: "Tesla has introduced an AI-driven home energy system that optimizes electricity usage, storage, and generation from solar panels, potentially reducing home energy costs by up to 30%.",
				Points: []string{
					"System integrates with Tesla Powerwall and solar installations",
					"AI predicts optimal charging/discharging cycles based on usage patterns",
					"Can reduce electricity bills by 20-30% in typical households",
					"Includes smart appliance integration for further optimization",
					"Over-the-air updates will continue to improve efficiency",
				},
			},
			{
				ID: "feed-4", Kind: KindFeed, Category: "business", Age: 3 * h, Source: "Bloomberg",
				Title:   "Amazon Acquires AI Startup for $3.2 Billion to Enhance Logistics",
				Summary: "Amazon has acquired an AI logistics startup for $3.2 billion, aiming to revolutionize its supply chain with advanced predictive algorithms and autonomous routing systems.",
				Points: []string{
					"Largest AI acquisition in Amazon's history",
					"Expected to reduce delivery times by 15-20%",
					"Will integrate with existing Amazon Robotics division",
					"Founders joining Amazon's senior leadership team",
					"Technology to be implemented across global operations within 18 months",
				},
			},
			{
				ID: "feed-5", Kind: KindFeed, Category: "science", Age: 6 * h, Source: "Science",
				Title:   "Breakthrough in Quantum Computing Achieves Quantum Advantage in Machine Learning",
				Summary: "Scientists have demonstrated quantum advantage in a practical machine learning application for the first time, solving complex optimization problems thousands of times faster than classical supercomputers.",
				Points: []string{
					"First practical quantum advantage in machine learning applications",
					"Solved optimization problems 4,000 times faster than classical methods",
					"Used 128 qubit quantum processor with new error correction techniques",
					"Potential applications in drug discovery, materials science, and finance",
					"Commercial applications expected within 2-3 years",
				},
			},
			{
				ID: "feed-6", Kind: KindFeed, Category: "health", Age: 4 * h, Source: "Medical News Today",
				Title:   "AI System Detects Early-Stage Cancer with 99% Accuracy in Large Clinical Trial",
				Summary: "A new AI diagnostic system has demonstrated 99% accuracy in detecting early-stage cancers across multiple types in a large-scale clinical trial, potentially revolutionizing cancer screening.",
				Points: []string{
					"System detects 8 common cancer types from a single blood sample",
					"99% accuracy for early-stage detection, compared to 45-75% with current methods",
					"Trial included over 50,000 participants across 12 countries",
					"FDA approval expected within 6 months",
					"Could reduce cancer treatment costs by up to 60% through earlier intervention",
				},
			},

			{ID: "card-1", Kind: KindCard, Category: "technology", Age: 2 * h, Source: "TechCrunch",
				Title: "OpenAI Announces GPT-5 with Revolutionary Multimodal Capabilities"},
			{ID: "card-2", Kind: KindCard, Category: "technology", Age: 5 * h, Source: "Nature",
				Title: "Google's DeepMind Solves Protein Folding for All Known Proteins"},
			{ID: "card-3", Kind: KindCard, Category: "business", Age: 3 * h, Source: "Bloomberg",
				Title: "Amazon Acquires AI Startup for $3.2 Billion to Enhance Logistics"},
			{ID: "card-4", Kind: KindCard, Category: "business", Age: 6 * h, Source: "Financial Times",
				Title: "Tesla Reports Record Quarterly Profits as EV Demand Surges"},
			{ID: "card-5", Kind: KindCard, Category: "science", Age: 6 * h, Source: "Science",
				Title: "Breakthrough in Quantum Computing Achieves Quantum Advantage"},
			{ID: "card-6", Kind: KindCard, Category: "science", Age: 8 * h, Source: "Space.com",
				Title: "NASA's James Webb Telescope Discovers Potential Habitable Exoplanet"},
			{ID: "card-7", Kind: KindCard, Category: "health", Age: 4 * h, Source: "Medical News Today",
				Title: "AI System Detects Early-Stage Cancer with 99% Accuracy in Trial"},
			{ID: "card-8", Kind: KindCard, Category: "health", Age: 7 * h, Source: "The Lancet",
				Title: "New mRNA Vaccine Shows Promise Against Multiple Cancer Types"},
		},
		Headlines: []Headline{
			{ID: "global-1", Tab: "trending", Age: 1 * h, Source: "Reuters", Trending: true, Region: "Global",
				Title: "AI Regulation Framework Proposed by International Coalition"},
			{ID: "global-2", Tab: "trending", Age: 3 * h, Source: "BBC", Region: "Europe",
				Title: "Quantum Computing Breakthrough Promises New Era of Secure Communications"},
			{ID: "global-3", Tab: "trending", Age: 5 * h, Source: "CNN", Trending: true, Region: "North America",
				Title: "Neural Implant Allows Paralyzed Patient to Control Computer with Thoughts"},
			{ID: "global-4", Tab: "trending", Age: 7 * h, Source: "Financial Times", Region: "Global",
				Title: "Major Tech Companies Pledge $1 Billion for Responsible AI Development"},
			{ID: "global-5", Tab: "editors", Age: 2 * h, Source: "The Economist", Region: "Global",
				Title: "The Future of Work: How AI is Reshaping Industries and Creating New Opportunities"},
			{ID: "global-6", Tab: "editors", Age: 4 * h, Source: "National Geographic", Trending: true, Region: "Global",
				Title: "Climate Tech Innovations That Could Help Reverse Global Warming"},
			{ID: "global-7", Tab: "editors", Age: 6 * h, Source: "Wired", Region: "North America",
				Title: "The Ethics of Brain-Computer Interfaces: Privacy and Identity Concerns"},
			{ID: "global-8", Tab: "editors", Age: 8 * h, Source: "Al Jazeera", Trending: true, Region: "Asia",
				Title: "How Developing Nations Are Leapfrogging with AI and Blockchain Technologies"},
		},
	}
}
