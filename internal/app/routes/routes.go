package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hosuracademy/academy-api/internal/app/controllers"
	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter.
type Controllers struct {
	Auth    *controllers.AuthController
	Student *controllers.StudentController
	Course  *controllers.CourseController
	Result  *controllers.ResultController
	Inquiry *controllers.InquiryController
	Catalog *controllers.CatalogController
	System  *controllers.SystemController
}

// SetupRouter configures all application routes. API routes live under
// basePath; the welcome and health endpoints stay at the root.
func SetupRouter(
	router *gin.Engine,
	basePath string,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/", ctrl.System.Welcome)
	router.GET("/health", ctrl.System.Health)

	api := router.Group(basePath)

	// --- Public routes ---
	api.POST("/login", ctrl.Auth.Login)
	api.POST("/logout", authMiddleware.OptionalAuthenticate(), ctrl.Auth.Logout)

	courses := api.Group("/courses")
	{
		courses.GET("", ctrl.Course.GetAllCourses)
		courses.GET("/:id", ctrl.Course.GetCourseByID)
	}

	inquiries := api.Group("/inquiries")
	{
		inquiries.POST("", ctrl.Inquiry.SubmitInquiry)
		inquiries.GET("", ctrl.Inquiry.GetAllInquiries)
	}

	api.GET("/gallery", ctrl.Catalog.GetGallery)
	api.GET("/toppers", ctrl.Catalog.GetToppers)

	results := api.Group("/results")
	{
		results.GET("", ctrl.Result.GetAllResults)
		results.GET("/me", authMiddleware.Authenticate(), ctrl.Result.GetMyResults)
		results.GET("/:id", ctrl.Result.GetResultByID)
		results.POST("", authMiddleware.Authenticate(), authMiddleware.RoleRequired(models.RoleAdmin), ctrl.Result.PublishResult)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.Authenticate())
	{
		authenticated.GET("/user", ctrl.Auth.GetCurrentUser)
		authenticated.GET("/students/me", ctrl.Student.GetMe)

		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			students.GET("", ctrl.Student.GetAllStudents)
			students.POST("", ctrl.Student.CreateStudent)
			students.GET("/:id", ctrl.Student.GetStudentByID)
			students.PUT("/:id", ctrl.Student.UpdateStudent)
			students.DELETE("/:id", ctrl.Student.DeleteStudent)
		}
	}
}
