package handlers

import (
	"io"
	"log"
	"net/http"

	"portal-api/models"
	"portal-api/services"

	"github.com/gin-gonic/gin"
)

type MaterialHandler struct {
	materialService *services.MaterialService
	roleService     *services.RoleService
}

func NewMaterialHandler(materials *services.MaterialService, roles *services.RoleService) *MaterialHandler {
	return &MaterialHandler{
		materialService: materials,
		roleService:     roles,
	}
}

// GetMaterials returns the materials visible to one section.
func (h *MaterialHandler) GetMaterials(c *gin.Context) {
	classID := c.Query("class_id")
	section := c.Query("section")

	if classID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "class_id parameter is required",
		})
		return
	}
	if section == "" {
		section = services.SectionFromClassID(classID)
	}

	materials, err := h.materialService.BySection(c.Request.Context(), classID, section)
	if err != nil {
		writeStoreError(c, err, "failed to load materials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": materials})
}

// UploadMaterial accepts a multipart upload and appends the index record.
func (h *MaterialHandler) UploadMaterial(c *gin.Context) {
	log.Println("MaterialHandler - UploadMaterial")

	classID := c.PostForm("class_id")
	courseCode := c.PostForm("course_code")
	if classID == "" || courseCode == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "class_id and course_code are required",
		})
		return
	}

	if !h.roleService.IsAdmin(userIDs(c), classID) {
		writeForbidden(c)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "file is required",
			Message: err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to open uploaded file",
			Message: err.Error(),
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read uploaded file",
			Message: err.Error(),
		})
		return
	}

	section := c.PostForm("section")
	if section == "" {
		section = services.SectionFromClassID(classID)
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	material, err := h.materialService.Upload(c.Request.Context(), services.MaterialUpload{
		ClassID:     classID,
		Section:     section,
		CourseCode:  courseCode,
		CourseTitle: c.PostForm("course_title"),
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		UploadedBy:  c.PostForm("uploaded_by"),
		Data:        data,
	})
	if err != nil {
		writeStoreError(c, err, "failed to upload material")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": material})
}

// DeleteMaterial removes a record; the stored file is cleaned up best-effort.
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	log.Println("MaterialHandler - DeleteMaterial")
	id := c.Param("id")

	materials, err := h.materialService.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "failed to load materials")
		return
	}

	var classID string
	for _, m := range materials {
		if m.ID == id {
			classID = m.ClassID
			break
		}
	}
	if classID == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "material not found",
		})
		return
	}

	if !h.roleService.IsAdmin(userIDs(c), classID) {
		writeForbidden(c)
		return
	}

	deleted, err := h.materialService.Delete(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err, "failed to delete material")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": deleted})
}
