package controllers

import (
	"net/http"

	"cohort-tools-be/internal/models"
	"cohort-tools-be/internal/service"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents handles GET /api/students - cohorts come back populated
func (sc *StudentController) ListStudents(c *gin.Context) {
	students, err := sc.studentService.ListStudents()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// ListStudentsByCohort handles GET /api/students/cohort/:cohortId
func (sc *StudentController) ListStudentsByCohort(c *gin.Context) {
	students, err := sc.studentService.ListStudentsByCohort(c.Param("cohortId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// GetStudent handles GET /api/students/:id
func (sc *StudentController) GetStudent(c *gin.Context) {
	student, err := sc.studentService.GetStudent(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// CreateStudent handles POST /api/students
func (sc *StudentController) CreateStudent(c *gin.Context) {
	var req models.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	student, err := sc.studentService.CreateStudent(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, student)
}

// UpdateStudent handles PUT /api/students/:id
func (sc *StudentController) UpdateStudent(c *gin.Context) {
	var req models.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	student, err := sc.studentService.UpdateStudent(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// DeleteStudent handles DELETE /api/students/:id - 204 whether or not the
// student existed
func (sc *StudentController) DeleteStudent(c *gin.Context) {
	if err := sc.studentService.DeleteStudent(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
