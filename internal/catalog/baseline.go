package catalog

import "ecomarket/internal/domain"

// baselineProducts is the fixed local catalog, always present regardless of
// remote availability. Identifiers start at 101 and are disjoint from the
// remote source's range, so the merge never needs to deduplicate.
func baselineProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          101,
			Name:        "Savon artisanal à l'huile d'olive",
			Description: "Savon naturel fabriqué à la main avec de l'huile d'olive bio. Hydratant et nourrissant pour tous types de peau.",
			Price:       8.50,
			Image:       "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
			Category:    "Cosmétiques",
			InStock:     true,
			Rating:      4.8,
			Artisan:     "Savonnerie du Sud",
		},
		{
			ID:          102,
			Name:        "Sac en toile de jute",
			Description: "Sac réutilisable en fibres naturelles, parfait pour les courses écologiques et durables.",
			Price:       15.90,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
			Category:    "Accessoires",
			InStock:     true,
			Rating:      4.6,
			Artisan:     "Atelier Textile Vert",
		},
		{
			ID:          103,
			Name:        "Miel de lavande bio",
			Description: "Miel de lavande produit localement sans pesticides, récolté dans le respect des abeilles.",
			Price:       12.00,
			Image:       "https://images.unsplash.com/photo-1587049352846-4a222e784d38?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
			Category:    "Alimentation",
			InStock:     true,
			Rating:      4.9,
			Artisan:     "Rucher des Collines",
		},
		{
			ID:          105,
			Name:        "Thé vert bio des montagnes",
			Description: "Thé vert cultivé en agriculture biologique en haute altitude, riche en antioxydants.",
			Price:       22.90,
			Image:       "https://images.unsplash.com/photo-1544787219-7f47ccb76574?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
			Category:    "Alimentation",
			InStock:     true,
			Rating:      4.5,
			Artisan:     "Jardins de Thé Bio",
		},
		{
			ID:          106,
			Name:        "Écharpe en laine mérinos",
			Description: "Écharpe tricotée main en laine mérinos éthique, douce et chaude.",
			Price:       45.00,
			Image:       "https://images.unsplash.com/photo-1570213489059-0aac6626cade?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
			Category:    "Accessoires",
			InStock:     false,
			Rating:      4.8,
			Artisan:     "Tricots Montagnards",
		},
		{
			ID:          107,
			Name:        "Ceramique artisanale",
			Description: "Bol en céramique fait main, parfait pour le petit-déjeuner éco-responsable.",
			Price:       28.00,
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
			Category:    "Décoration",
			InStock:     true,
			Rating:      4.6,
			Artisan:     "Atelier Terre et Feu",
		},
		{
			ID:          108,
			Name:        "Huile d'olive bio",
			Description: "Huile d'olive extra vierge issue d'oliviers centenaires, première pression à froid.",
			Price:       16.50,
			Image:       "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?w=400&h=300&fit=crop&crop=center&auto=format&q=80",
			Category:    "Alimentation",
			InStock:     true,
			Rating:      4.9,
			Artisan:     "Domaine des Oliviers",
		},
	}
}
