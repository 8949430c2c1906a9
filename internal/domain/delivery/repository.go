package delivery

import (
	"github.com/retail/backend/internal/domain/shared"
)

// DeliveryPointRepository defines persistence operations for the
// delivery-point registry
type DeliveryPointRepository interface {
	shared.Repository[DeliveryPoint]
}
