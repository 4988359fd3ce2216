package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"supervisiku_backend/internals/constants"
	authHelper "supervisiku_backend/internals/features/users/auth/helper"
	"supervisiku_backend/internals/features/users/user/dto"
	"supervisiku_backend/internals/features/users/user/model"
	helper "supervisiku_backend/internals/helpers"
)

var validateAkun = validator.New()

// AkunController: kelola akun perawat & kepala ruangan (khusus kepala)
type AkunController struct {
	DB *gorm.DB
}

func NewAkunController(db *gorm.DB) *AkunController {
	return &AkunController{DB: db}
}

// =============================
// 📄 Daftar akun per role
// =============================
func (ctrl *AkunController) GetAllAkun(c *fiber.Ctx) error {
	var perawat []model.UserModel
	if err := ctrl.DB.Where("role = ?", constants.RolePerawat).
		Order("user_name asc").Find(&perawat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar perawat")
	}

	var kepala []model.UserModel
	if err := ctrl.DB.Where("role = ?", constants.RoleKepala).
		Order("user_name asc").Find(&kepala).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kepala ruangan")
	}

	return helper.JsonOK(c, "Daftar akun berhasil diambil", fiber.Map{
		"perawat":        dto.ToUserDTOs(perawat),
		"kepala_ruangan": dto.ToUserDTOs(kepala),
	})
}

// =============================
// ➕ Tambah akun (role perawat | kepala)
// =============================
func (ctrl *AkunController) CreateAkun(c *fiber.Ctx) error {
	var req dto.CreateAkunRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAkun.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	akun := model.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Password: hashed,
		Role:     req.Role,
		IsActive: true,
	}

	if err := ctrl.DB.Create(&akun).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username atau email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	roleLabel := "Perawat"
	if akun.Role == constants.RoleKepala {
		roleLabel = "Kepala Ruangan"
	}
	return helper.JsonCreated(c, "Akun "+roleLabel+" berhasil ditambahkan", dto.ToUserDTO(akun))
}

// =============================
// ✏️ Edit akun (username/email/role, password opsional)
// =============================
func (ctrl *AkunController) UpdateAkun(c *fiber.Ctx) error {
	akunID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID akun tidak valid")
	}

	var req dto.UpdateAkunRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAkun.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var akun model.UserModel
	if err := ctrl.DB.First(&akun, "id = ?", akunID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil akun")
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		updates["user_name"] = strings.TrimSpace(*req.UserName)
	}
	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		updates["email"] = strings.TrimSpace(*req.Email)
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := authHelper.HashPassword(*req.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
		}
		updates["password"] = hashed
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToUserDTO(akun))
	}

	if err := ctrl.DB.Model(&akun).Updates(updates).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username atau email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui akun")
	}

	return helper.JsonUpdated(c, "Akun berhasil diperbarui", dto.ToUserDTO(akun))
}

// =============================
// ❌ Hapus akun (tidak boleh hapus diri sendiri)
// =============================
func (ctrl *AkunController) DeleteAkun(c *fiber.Ctx) error {
	akunID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID akun tidak valid")
	}

	callerID, _ := c.Locals("user_id").(string)
	if callerID == akunID.String() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Anda tidak dapat menghapus akun Anda sendiri.")
	}

	var akun model.UserModel
	if err := ctrl.DB.First(&akun, "id = ?", akunID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil akun")
	}

	if err := ctrl.DB.Delete(&akun).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus akun")
	}

	roleLabel := "Perawat"
	if akun.Role == constants.RoleKepala {
		roleLabel = "Kepala Ruangan"
	}
	return helper.JsonDeleted(c, "Akun "+roleLabel+" '"+akun.UserName+"' berhasil dihapus", nil)
}
