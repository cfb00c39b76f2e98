package models

// ServiceCategory is the top-level grouping the client picks first.
type ServiceCategory string

const (
	CategorySocial          ServiceCategory = "social"
	CategoryCommercial      ServiceCategory = "commercial"
	CategoryStudio          ServiceCategory = "studio"
	CategoryVideoProduction ServiceCategory = "video_production"
	CategoryCustom          ServiceCategory = "custom"
)

// ServiceID identifies one sellable offering. A ServiceID is only meaningful
// paired with its owning category.
type ServiceID string

const (
	// Social.
	ServiceBirthday       ServiceID = "birthday"
	ServiceFifteen        ServiceID = "fifteen"
	ServiceGraduation     ServiceID = "graduation"
	ServiceWeddingBase    ServiceID = "wedding_base"
	ServiceWeddingClassic ServiceID = "wedding_classic"
	ServiceWeddingRomance ServiceID = "wedding_romance"
	ServiceWeddingEssence ServiceID = "wedding_essence"

	// Commercial.
	ServiceCommPhoto ServiceID = "comm_photo"
	ServiceCommVideo ServiceID = "comm_video"
	ServiceCommCombo ServiceID = "comm_combo"

	// Studio.
	ServiceStudioPhoto ServiceID = "studio_photo"
	ServiceStudioVideo ServiceID = "studio_video"

	// Video production.
	ServiceEditOnly  ServiceID = "edit_only"
	ServiceCamCap    ServiceID = "cam_cap"
	ServiceMobileCap ServiceID = "mobile_cap"
	ServiceDrone     ServiceID = "drone"

	// Custom.
	ServiceCustomProject ServiceID = "custom_project"
)

// Categories lists every category in display order.
func Categories() []ServiceCategory {
	return []ServiceCategory{
		CategorySocial,
		CategoryCommercial,
		CategoryStudio,
		CategoryVideoProduction,
		CategoryCustom,
	}
}
