package store

import "time"

const sampleScreenshot = "data:image/jpeg;base64,/9j/4AAQSkZJRgABAQAAAQABAAD/2wBDAAYEBQYFBAYGBQYHBwYIChAKCgkJChQODwwQFxQYGBcUFhYaHSUfGhsjHBYWICwgIyYnKSopGR8tMC0oMCUoKSj/2wBDAQcHBwoIChMKChMoGhYaKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCgoKCj/wAARCAABAAEDASIAAhEBAxEB/8QAFQABAQAAAAAAAAAAAAAAAAAAAAv/xAAUEAEAAAAAAAAAAAAAAAAAAAAA/8QAFQEBAQAAAAAAAAAAAAAAAAAAAAX/xAAUEQEAAAAAAAAAAAAAAAAAAAAA/9oADAMBAAIRAxEAPwCdABmX/9k="

// Seed returns the state a fresh store starts from when nothing has been
// persisted yet.
func Seed() State {
	at := func(hour, min int) time.Time {
		return time.Date(2024, time.January, 15, hour, min, 0, 0, time.UTC)
	}

	return State{
		Orders: []Order{
			{
				ID:            "ORD001",
				MlbbID:        "123456789",
				ServerID:      "2001",
				PhoneNumber:   "09123456789",
				CustomerName:  "Aung Aung",
				Email:         "aung@example.com",
				Diamonds:      112,
				Price:         9000,
				PaymentMethod: string(PaymentKPay),
				Status:        StatusPending,
				Priority:      PriorityMedium,
				CreatedAt:     at(10, 30),
				UpdatedAt:     at(10, 30),
				Screenshot:    sampleScreenshot,
			},
			{
				ID:            "ORD002",
				MlbbID:        "987654321",
				ServerID:      "2002",
				PhoneNumber:   "09987654321",
				CustomerName:  "Thant Zin",
				Email:         "thant@example.com",
				Diamonds:      570,
				Price:         45000,
				PaymentMethod: string(PaymentWavePay),
				Status:        StatusCompleted,
				Priority:      PriorityHigh,
				CreatedAt:     at(9, 15),
				UpdatedAt:     at(9, 20),
				Screenshot:    sampleScreenshot,
			},
		},
		PaymentMethods: []PaymentMethod{
			{
				ID:            "PAY001",
				Name:          "KPAY Primary",
				Type:          PaymentKPay,
				PhoneNumber:   "09950971136",
				AccountHolder: "Admin User",
				Username:      "admin_kpay",
				IsActive:      true,
				DailyLimit:    500000,
				CurrentUsage:  125000,
				Notes:         "Primary payment method",
			},
			{
				ID:            "PAY002",
				Name:          "WAVEPAY Secondary",
				Type:          PaymentWavePay,
				PhoneNumber:   "09950971136",
				AccountHolder: "Admin User",
				Username:      "admin_wave",
				IsActive:      true,
				DailyLimit:    300000,
				CurrentUsage:  75000,
				Notes:         "Secondary payment method",
			},
		},
		DiamondPackages: []DiamondPackage{
			{ID: "DP001", Diamonds: 11, Price: 1000, IsActive: true, Category: CategoryStarter},
			{ID: "DP002", Diamonds: 22, Price: 2000, IsActive: true, Category: CategoryStarter},
			{ID: "DP003", Diamonds: 56, Price: 4800, IsActive: true, Category: CategoryPopular},
			{ID: "DP004", Diamonds: 86, Price: 5500, IsActive: true, Category: CategoryPopular},
			{ID: "DP005", Diamonds: 112, Price: 9000, Popular: true, IsActive: true, Category: CategoryPopular},
			{ID: "DP006", Diamonds: 172, Price: 12000, IsActive: true, Category: CategoryValue},
			{ID: "DP007", Diamonds: 223, Price: 18000, IsActive: true, Category: CategoryValue},
			{ID: "DP008", Diamonds: 257, Price: 17500, IsActive: true, Category: CategoryValue},
			{ID: "DP009", Diamonds: 336, Price: 27000, IsActive: true, Category: CategoryPremium},
			{ID: "DP010", Diamonds: 570, Price: 45000, IsActive: true, Category: CategoryPremium},
		},
		SystemSettings: SystemSettings{
			SiteName:         "7AM Diamond",
			SiteDescription:  "Mobile Legends Diamond Top-up Myanmar",
			ContactPhone:     "09950971136",
			MaintenanceMode:  false,
			AutoApproval:     false,
			MaxOrdersPerDay:  100,
			MinOrderAmount:   1000,
			MaxOrderAmount:   500000,
			SupportEmail:     "support@7amdiamond.com",
			BusinessHours:    "24/7",
			WelcomeMessage:   "🎮 Mobile Legends Diamond Top-up 😊💎",
			FeaturedPackages: []string{"DP005", "DP010"},
			Theme: Theme{
				PrimaryColor:   "#7c3aed",
				SecondaryColor: "#2563eb",
				AccentColor:    "#06b6d4",
			},
			Notifications: Notifications{Email: true, SMS: true, Push: true},
		},
		ActivityLogs: []ActivityLog{},
		Sequences:    Sequences{Order: 2, Payment: 2, Package: 10},
	}
}
