// Package services holds the academy's business rules on top of the
// repositories.
//
// Services defined in this package:
//   - AuthService: login, token resolution and logout
//   - StudentService: student records and self lookup
//   - CourseService: course catalogue
//   - ResultService: exam result publishing and per-student lookup
//   - InquiryService: admission inquiries and their notification emails
//   - CatalogService: gallery and toppers
package services
