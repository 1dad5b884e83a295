package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Bookings() BookingRepository
	Notifications() NotificationRepository
	Reviews() ReviewRepository
	Pricing() PricingRepository
	Profiles() ProfileRepository
	Showcases() ShowcaseRepository
	Freelancers() FreelancerDirectory
}
