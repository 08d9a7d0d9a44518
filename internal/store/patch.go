package store

import "time"

// Patches carry only the fields the caller wants to change; nil means keep.

type OrderPatch struct {
	MlbbID        *string      `json:"mlbbId,omitempty"`
	ServerID      *string      `json:"serverId,omitempty"`
	PhoneNumber   *string      `json:"phoneNumber,omitempty"`
	CustomerName  *string      `json:"customerName,omitempty"`
	Email         *string      `json:"email,omitempty"`
	Diamonds      *int         `json:"diamonds,omitempty"`
	Price         *int64       `json:"price,omitempty"`
	PaymentMethod *string      `json:"paymentMethod,omitempty"`
	Status        *OrderStatus `json:"status,omitempty"`
	Priority      *Priority    `json:"priority,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
	Screenshot    *string      `json:"screenshot,omitempty"`
}

func (p OrderPatch) apply(o *Order, now time.Time) {
	setIf(&o.MlbbID, p.MlbbID)
	setIf(&o.ServerID, p.ServerID)
	setIf(&o.PhoneNumber, p.PhoneNumber)
	setIf(&o.CustomerName, p.CustomerName)
	setIf(&o.Email, p.Email)
	setIf(&o.Diamonds, p.Diamonds)
	setIf(&o.Price, p.Price)
	setIf(&o.PaymentMethod, p.PaymentMethod)
	setIf(&o.Status, p.Status)
	setIf(&o.Priority, p.Priority)
	setIf(&o.Notes, p.Notes)
	setIf(&o.Screenshot, p.Screenshot)
	o.UpdatedAt = now
}

type PaymentMethodPatch struct {
	Name          *string      `json:"name,omitempty"`
	Type          *PaymentType `json:"type,omitempty"`
	PhoneNumber   *string      `json:"phoneNumber,omitempty"`
	AccountHolder *string      `json:"accountHolder,omitempty"`
	Username      *string      `json:"username,omitempty"`
	IsActive      *bool        `json:"isActive,omitempty"`
	DailyLimit    *int64       `json:"dailyLimit,omitempty"`
	CurrentUsage  *int64       `json:"currentUsage,omitempty"`
	QRCode        *string      `json:"qrCode,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
}

func (p PaymentMethodPatch) apply(m *PaymentMethod) {
	setIf(&m.Name, p.Name)
	setIf(&m.Type, p.Type)
	setIf(&m.PhoneNumber, p.PhoneNumber)
	setIf(&m.AccountHolder, p.AccountHolder)
	setIf(&m.Username, p.Username)
	setIf(&m.IsActive, p.IsActive)
	setIf(&m.DailyLimit, p.DailyLimit)
	setIf(&m.CurrentUsage, p.CurrentUsage)
	setIf(&m.QRCode, p.QRCode)
	setIf(&m.Notes, p.Notes)
}

type DiamondPackagePatch struct {
	Diamonds      *int             `json:"diamonds,omitempty"`
	Price         *int64           `json:"price,omitempty"`
	OriginalPrice *int64           `json:"originalPrice,omitempty"`
	Popular       *bool            `json:"popular,omitempty"`
	IsActive      *bool            `json:"isActive,omitempty"`
	Discount      *int             `json:"discount,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Category      *PackageCategory `json:"category,omitempty"`
	Bonus         *int             `json:"bonus,omitempty"`
}

func (p DiamondPackagePatch) apply(d *DiamondPackage) {
	setIf(&d.Diamonds, p.Diamonds)
	setIf(&d.Price, p.Price)
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		d.OriginalPrice = &v
	}
	setIf(&d.Popular, p.Popular)
	setIf(&d.IsActive, p.IsActive)
	if p.Discount != nil {
		v := *p.Discount
		d.Discount = &v
	}
	setIf(&d.Description, p.Description)
	setIf(&d.Category, p.Category)
	if p.Bonus != nil {
		v := *p.Bonus
		d.Bonus = &v
	}
}

// SettingsPatch is merged shallowly: a non-nil Theme or Notifications
// replaces the whole nested record.
type SettingsPatch struct {
	SiteName         *string        `json:"siteName,omitempty"`
	SiteDescription  *string        `json:"siteDescription,omitempty"`
	ContactPhone     *string        `json:"contactPhone,omitempty"`
	MaintenanceMode  *bool          `json:"maintenanceMode,omitempty"`
	AutoApproval     *bool          `json:"autoApproval,omitempty"`
	MaxOrdersPerDay  *int           `json:"maxOrdersPerDay,omitempty"`
	MinOrderAmount   *int64         `json:"minOrderAmount,omitempty"`
	MaxOrderAmount   *int64         `json:"maxOrderAmount,omitempty"`
	SupportEmail     *string        `json:"supportEmail,omitempty"`
	BusinessHours    *string        `json:"businessHours,omitempty"`
	WelcomeMessage   *string        `json:"welcomeMessage,omitempty"`
	FeaturedPackages *[]string      `json:"featuredPackages,omitempty"`
	Theme            *Theme         `json:"theme,omitempty"`
	Notifications    *Notifications `json:"notifications,omitempty"`
}

// Fields returns the json names of the fields present in the patch, in
// declaration order.
func (p SettingsPatch) Fields() []string {
	var fields []string
	add := func(present bool, name string) {
		if present {
			fields = append(fields, name)
		}
	}
	add(p.SiteName != nil, "siteName")
	add(p.SiteDescription != nil, "siteDescription")
	add(p.ContactPhone != nil, "contactPhone")
	add(p.MaintenanceMode != nil, "maintenanceMode")
	add(p.AutoApproval != nil, "autoApproval")
	add(p.MaxOrdersPerDay != nil, "maxOrdersPerDay")
	add(p.MinOrderAmount != nil, "minOrderAmount")
	add(p.MaxOrderAmount != nil, "maxOrderAmount")
	add(p.SupportEmail != nil, "supportEmail")
	add(p.BusinessHours != nil, "businessHours")
	add(p.WelcomeMessage != nil, "welcomeMessage")
	add(p.FeaturedPackages != nil, "featuredPackages")
	add(p.Theme != nil, "theme")
	add(p.Notifications != nil, "notifications")
	return fields
}

func (p SettingsPatch) apply(s *SystemSettings) {
	setIf(&s.SiteName, p.SiteName)
	setIf(&s.SiteDescription, p.SiteDescription)
	setIf(&s.ContactPhone, p.ContactPhone)
	setIf(&s.MaintenanceMode, p.MaintenanceMode)
	setIf(&s.AutoApproval, p.AutoApproval)
	setIf(&s.MaxOrdersPerDay, p.MaxOrdersPerDay)
	setIf(&s.MinOrderAmount, p.MinOrderAmount)
	setIf(&s.MaxOrderAmount, p.MaxOrderAmount)
	setIf(&s.SupportEmail, p.SupportEmail)
	setIf(&s.BusinessHours, p.BusinessHours)
	setIf(&s.WelcomeMessage, p.WelcomeMessage)
	if p.FeaturedPackages != nil {
		s.FeaturedPackages = append([]string(nil), (*p.FeaturedPackages)...)
	}
	setIf(&s.Theme, p.Theme)
	setIf(&s.Notifications, p.Notifications)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
