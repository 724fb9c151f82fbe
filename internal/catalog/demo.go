// internal/catalog/demo.go
package catalog

import "github.com/javajoker/listing-discovery/internal/models"

// DefaultFixture returns the built-in demo catalog.
func DefaultFixture() Fixture {
	sellers := demoSellers()

	return Fixture{
		Categories: []models.Category{
			{ID: "1", Name: "Mobile Phones", Icon: "Smartphone", Slug: "mobiles", Count: 2453},
			{ID: "2", Name: "Electronics", Icon: "Laptop", Slug: "electronics", Count: 1876},
			{ID: "3", Name: "Furniture", Icon: "Sofa", Slug: "furniture", Count: 943},
			{ID: "4", Name: "Home Appliances", Icon: "Refrigerator", Slug: "appliances", Count: 1234},
			{ID: "5", Name: "Vehicles", Icon: "Car", Slug: "vehicles", Count: 567},
		},
		Listings: []models.Listing{
			{
				ID:          "1",
				Title:       "iPhone 14 Pro Max - 256GB Deep Purple",
				Description: "Excellent condition, 11 months old. With original box, charger, and unused earphones. Battery health 96%.",
				Price:       89999,
				Category:    "mobiles",
				Condition:   models.ConditionLikeNew,
				Location:    "Mumbai, Maharashtra",
				Seller:      sellers[0],
				CreatedAt:   models.MustDate("2024-01-15"),
				ExpiresAt:   models.MustDate("2024-02-15"),
				Featured:    true,
				Status:      models.ListingStatusActive,
			},
			{
				ID:          "2",
				Title:       "Apple MacBook Air M2 Laptop - 8GB/256GB Space Gray",
				Description: "Barely used, perfect condition laptop. Includes charger and protective case. AppleCare+ until Dec 2025.",
				Price:       84999,
				Category:    "electronics",
				Condition:   models.ConditionLikeNew,
				Location:    "Bangalore, Karnataka",
				Seller:      sellers[1],
				CreatedAt:   models.MustDate("2024-01-14"),
				ExpiresAt:   models.MustDate("2024-02-14"),
				Featured:    true,
				Status:      models.ListingStatusActive,
			},
			{
				ID:          "3",
				Title:       "Premium L-Shape Sofa Set - Beige",
				Description: "3-seater L-shape sofa with premium fabric. Only 1 year old. Moving out sale. Minor wear, great condition.",
				Price:       35000,
				Category:    "furniture",
				Condition:   models.ConditionUsed,
				Location:    "Delhi NCR",
				Seller:      sellers[2],
				CreatedAt:   models.MustDate("2024-01-13"),
				ExpiresAt:   models.MustDate("2024-02-13"),
				Status:      models.ListingStatusActive,
			},
			{
				ID:          "4",
				Title:       "Samsung Galaxy S23 Ultra - 512GB",
				Description: "Brand new sealed box. Purchased from Samsung India. Full warranty. Green color.",
				Price:       109999,
				Category:    "mobiles",
				Condition:   models.ConditionNew,
				Location:    "Hyderabad, Telangana",
				Seller:      sellers[3],
				CreatedAt:   models.MustDate("2024-01-12"),
				ExpiresAt:   models.MustDate("2024-02-12"),
				Featured:    true,
				Status:      models.ListingStatusActive,
			},
			{
				ID:          "5",
				Title:       "LG Side-by-Side Refrigerator 687L",
				Description: "Smart inverter, door cooling+, multi air flow. 2 years old, excellent condition. Reason: Upgrading.",
				Price:       55000,
				Category:    "appliances",
				Condition:   models.ConditionUsed,
				Location:    "Chennai, Tamil Nadu",
				Seller:      sellers[0],
				CreatedAt:   models.MustDate("2024-01-11"),
				ExpiresAt:   models.MustDate("2024-02-11"),
				Status:      models.ListingStatusActive,
			},
			{
				ID:          "6",
				Title:       "Royal Enfield Classic 350 - 2022",
				Description: "Chrome Black, 12000 km, first owner. All documents clear. Service history available.",
				Price:       165000,
				Category:    "vehicles",
				Condition:   models.ConditionUsed,
				Location:    "Pune, Maharashtra",
				Seller:      sellers[1],
				CreatedAt:   models.MustDate("2024-01-10"),
				ExpiresAt:   models.MustDate("2024-02-10"),
				Featured:    true,
				Status:      models.ListingStatusActive,
			},
			{
				ID:          "7",
				Title:       `Sony 55" 4K Smart TV - X90J`,
				Description: "Stunning picture quality, Dolby Vision, Google TV. 18 months old. Wall mount included.",
				Price:       72000,
				Category:    "electronics",
				Condition:   models.ConditionLikeNew,
				Location:    "Kolkata, West Bengal",
				Seller:      sellers[2],
				CreatedAt:   models.MustDate("2024-01-09"),
				ExpiresAt:   models.MustDate("2024-02-09"),
				Status:      models.ListingStatusActive,
			},
			{
				ID:          "8",
				Title:       "Wooden King Size Bed with Storage",
				Description: "Solid sheesham wood, hydraulic storage, mattress not included. Classic design. Moving sale.",
				Price:       28000,
				Category:    "furniture",
				Condition:   models.ConditionUsed,
				Location:    "Ahmedabad, Gujarat",
				Seller:      sellers[3],
				CreatedAt:   models.MustDate("2024-01-08"),
				ExpiresAt:   models.MustDate("2024-02-08"),
				Status:      models.ListingStatusActive,
			},
		},
		Locations: []string{
			models.AllLocations,
			"Mumbai, Maharashtra",
			"Delhi NCR",
			"Bangalore, Karnataka",
			"Hyderabad, Telangana",
			"Chennai, Tamil Nadu",
			"Kolkata, West Bengal",
			"Pune, Maharashtra",
			"Ahmedabad, Gujarat",
			"Jaipur, Rajasthan",
		},
	}
}

func demoSellers() []*models.Seller {
	return []*models.Seller{
		{
			ID: "s1", Name: "Rahul Sharma", Badges: []string{"verified", "trusted"},
			MemberSince: "2023", AdsPosted: 24, ResponseRate: 98, Tier: "Gold",
			Followers: 45, Rating: 4.8, IsOnline: true,
			IsVerifiedMobile: true, IsVerifiedEmail: true,
		},
		{
			ID: "s2", Name: "Priya Patel", Badges: []string{"verified", "premium"},
			MemberSince: "2022", AdsPosted: 56, ResponseRate: 100, Tier: "Diamond",
			Followers: 120, Rating: 4.9,
			IsVerifiedMobile: true, IsVerifiedEmail: true,
		},
		{
			ID: "s3", Name: "Amit Kumar", Badges: []string{"verified"},
			MemberSince: "2024", AdsPosted: 8, ResponseRate: 92, Tier: "Bronze",
			Followers: 12, Rating: 4.5, IsOnline: true,
			IsVerifiedMobile: true,
		},
		{
			ID: "s4", Name: "Sneha Reddy", Badges: []string{"verified", "trusted", "premium"},
			MemberSince: "2021", AdsPosted: 112, ResponseRate: 99, Tier: "Diamond",
			Followers: 340, Rating: 5.0,
			IsVerifiedMobile: true, IsVerifiedEmail: true,
		},
	}
}
