package store

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusRejected   OrderStatus = "rejected"
	StatusCancelled  OrderStatus = "cancelled"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type PaymentType string

const (
	PaymentKPay    PaymentType = "kpay"
	PaymentWavePay PaymentType = "wavepay"
	PaymentAYA     PaymentType = "aya"
	PaymentCB      PaymentType = "cb"
	PaymentUAB     PaymentType = "uab"
)

type PackageCategory string

const (
	CategoryStarter PackageCategory = "starter"
	CategoryPopular PackageCategory = "popular"
	CategoryValue   PackageCategory = "value"
	CategoryPremium PackageCategory = "premium"
)

type LogType string

const (
	LogOrder    LogType = "order"
	LogPayment  LogType = "payment"
	LogPackage  LogType = "package"
	LogSystem   LogType = "system"
	LogSettings LogType = "settings"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

type Order struct {
	ID            string      `json:"id"`
	MlbbID        string      `json:"mlbbId"`
	ServerID      string      `json:"serverId"`
	PhoneNumber   string      `json:"phoneNumber"`
	CustomerName  string      `json:"customerName"`
	Email         string      `json:"email,omitempty"`
	Diamonds      int         `json:"diamonds"`
	Price         int64       `json:"price"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        OrderStatus `json:"status"`
	Priority      Priority    `json:"priority"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	Notes         string      `json:"notes,omitempty"`
	Screenshot    string      `json:"screenshot,omitempty"`
}

// NewOrder is an Order before the container assigns its identifier and
// timestamps.
type NewOrder struct {
	MlbbID        string      `json:"mlbbId"`
	ServerID      string      `json:"serverId"`
	PhoneNumber   string      `json:"phoneNumber"`
	CustomerName  string      `json:"customerName"`
	Email         string      `json:"email,omitempty"`
	Diamonds      int         `json:"diamonds"`
	Price         int64       `json:"price"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        OrderStatus `json:"status"`
	Priority      Priority    `json:"priority"`
	Notes         string      `json:"notes,omitempty"`
	Screenshot    string      `json:"screenshot,omitempty"`
}

type PaymentMethod struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Type          PaymentType `json:"type"`
	PhoneNumber   string      `json:"phoneNumber"`
	AccountHolder string      `json:"accountHolder"`
	Username      string      `json:"username,omitempty"`
	IsActive      bool        `json:"isActive"`
	DailyLimit    int64       `json:"dailyLimit"`
	CurrentUsage  int64       `json:"currentUsage"`
	QRCode        string      `json:"qrCode,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}

type NewPaymentMethod struct {
	Name          string      `json:"name"`
	Type          PaymentType `json:"type"`
	PhoneNumber   string      `json:"phoneNumber"`
	AccountHolder string      `json:"accountHolder"`
	Username      string      `json:"username,omitempty"`
	IsActive      bool        `json:"isActive"`
	DailyLimit    int64       `json:"dailyLimit"`
	CurrentUsage  int64       `json:"currentUsage"`
	QRCode        string      `json:"qrCode,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}

type DiamondPackage struct {
	ID            string          `json:"id"`
	Diamonds      int             `json:"diamonds"`
	Price         int64           `json:"price"`
	OriginalPrice *int64          `json:"originalPrice,omitempty"`
	Popular       bool            `json:"popular"`
	IsActive      bool            `json:"isActive"`
	Discount      *int            `json:"discount,omitempty"`
	Description   string          `json:"description,omitempty"`
	Category      PackageCategory `json:"category"`
	Bonus         *int            `json:"bonus,omitempty"`
}

type NewDiamondPackage struct {
	Diamonds      int             `json:"diamonds"`
	Price         int64           `json:"price"`
	OriginalPrice *int64          `json:"originalPrice,omitempty"`
	Popular       bool            `json:"popular"`
	IsActive      bool            `json:"isActive"`
	Discount      *int            `json:"discount,omitempty"`
	Description   string          `json:"description,omitempty"`
	Category      PackageCategory `json:"category"`
	Bonus         *int            `json:"bonus,omitempty"`
}

type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`
}

type Notifications struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
}

type SystemSettings struct {
	SiteName         string        `json:"siteName"`
	SiteDescription  string        `json:"siteDescription"`
	ContactPhone     string        `json:"contactPhone"`
	MaintenanceMode  bool          `json:"maintenanceMode"`
	AutoApproval     bool          `json:"autoApproval"`
	MaxOrdersPerDay  int           `json:"maxOrdersPerDay"`
	MinOrderAmount   int64         `json:"minOrderAmount"`
	MaxOrderAmount   int64         `json:"maxOrderAmount"`
	SupportEmail     string        `json:"supportEmail"`
	BusinessHours    string        `json:"businessHours"`
	WelcomeMessage   string        `json:"welcomeMessage"`
	FeaturedPackages []string      `json:"featuredPackages"`
	Theme            Theme         `json:"theme"`
	Notifications    Notifications `json:"notifications"`
}

type ActivityLog struct {
	ID        string    `json:"id"`
	AdminName string    `json:"adminName"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	Type      LogType   `json:"type"`
	Severity  Severity  `json:"severity"`
}

type NewActivityLog struct {
	AdminName string   `json:"adminName"`
	Action    string   `json:"action"`
	Details   string   `json:"details"`
	Type      LogType  `json:"type"`
	Severity  Severity `json:"severity"`
}

// Stats is derived from the collections on every call and never stored.
type Stats struct {
	TotalOrders          int     `json:"totalOrders"`
	PendingOrders        int     `json:"pendingOrders"`
	ProcessingOrders     int     `json:"processingOrders"`
	CompletedOrders      int     `json:"completedOrders"`
	RejectedOrders       int     `json:"rejectedOrders"`
	CancelledOrders      int     `json:"cancelledOrders"`
	TotalRevenue         int64   `json:"totalRevenue"`
	PendingRevenue       int64   `json:"pendingRevenue"`
	TotalDiamonds        int     `json:"totalDiamonds"`
	ActivePaymentMethods int     `json:"activePaymentMethods"`
	ActivePackages       int     `json:"activePackages"`
	AverageOrderValue    float64 `json:"averageOrderValue"`
}
