package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordsCtrl "lls_backend/internals/features/admin/records/controller"
)

// RecordsRoutes expects r to already be an admin-only group.
func RecordsRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := recordsCtrl.NewRecordsController(db)

	r.Post("/payments", ctrl.CreatePayment)
	r.Get("/payments", ctrl.ListPayments)
	r.Post("/certificates", ctrl.CreateCertificate)
	r.Get("/certificates", ctrl.ListCertificates)
	r.Post("/feedback", ctrl.CreateFeedback)
	r.Get("/feedback", ctrl.ListFeedback)
}
