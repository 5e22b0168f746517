package customer_order_post

import (
	"encoding/json"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"boutique/internal/entities"
	"boutique/internal/generated/dto"
	"boutique/internal/handlers/rest/render"
	"boutique/internal/service/order"
	"boutique/pkg/logger"
	"github.com/gorilla/mux"
)

const (
	imageField = "image"

	// запас на текстовые поля формы сверх лимита на файл
	formOverhead = 1 << 20
)

var errInvalidForm = errors.New("invalid order form")

type Handler struct {
	log     handlerLogger
	service Service
	storage FileStorage
}

func New(log handlerLogger, service Service, storage FileStorage) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		storage: storage,
	}
}

// ServeHTTP принимает multipart/form-data с необязательным файлом image
// или JSON тело. Цены в форме приходят строками.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["id"]

	var (
		orderModify entities.OrderModify
		err         error
	)
	if isMultipart(r) {
		orderModify, err = h.fromForm(w, r)
	} else {
		orderModify, err = fromJSON(r)
	}
	if err != nil {
		switch {
		case errors.Is(err, errInvalidForm):
			render.Error(w, h.log, http.StatusBadRequest, "Invalid order data")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("customer", customerID),
			).Error("upload order image")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to upload image")
		}
		return
	}
	orderModify.CustomerID = &customerID

	orderEntity, err := h.service.CreateOrder(r.Context(), orderModify)
	if err != nil {
		if orderModify.ImagePath != nil {
			h.discardImage(*orderModify.ImagePath)
		}

		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidCustomerID),
			errors.Is(err, order.ErrInvalidDescription),
			errors.Is(err, order.ErrInvalidPrice),
			errors.Is(err, order.ErrInvalidMaterialCost):
			render.Error(w, h.log, http.StatusBadRequest, "Invalid order data")
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("customer", customerID),
			).Error("create order")
			render.Error(w, h.log, http.StatusInternalServerError, "Failed to create order")
		}
		return
	}

	render.JSON(w, h.log, http.StatusCreated, render.Order(*orderEntity))
}

// discardImage убирает картинку заказа, который не был создан.
func (h *Handler) discardImage(path string) {
	err := h.storage.Remove(path)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("path", path),
		).Warn("remove orphan order image")
	}
}

func (h *Handler) fromForm(w http.ResponseWriter, r *http.Request) (entities.OrderModify, error) {
	maxBytes := h.storage.MaxBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+formOverhead)

	err := r.ParseMultipartForm(maxBytes)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return entities.OrderModify{}, err
		}
		return entities.OrderModify{}, errInvalidForm
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	var orderModify entities.OrderModify
	if description, ok := formValue(r.MultipartForm, "description"); ok {
		orderModify.Description = &description
	}

	orderModify.Price, err = parseAmount(r.MultipartForm, "price")
	if err != nil {
		return entities.OrderModify{}, err
	}
	orderModify.MaterialCost, err = parseAmount(r.MultipartForm, "materialCost")
	if err != nil {
		return entities.OrderModify{}, err
	}

	file, header, err := r.FormFile(imageField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return orderModify, nil
	case err != nil:
		return entities.OrderModify{}, errInvalidForm
	}
	defer file.Close()

	path, err := h.storage.Save(header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		return entities.OrderModify{}, err
	}
	orderModify.ImagePath = &path

	return orderModify, nil
}

func fromJSON(r *http.Request) (entities.OrderModify, error) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		return entities.OrderModify{}, errInvalidForm
	}

	return entities.OrderModify{
		Description:  orderCreateDTO.Description,
		Price:        orderCreateDTO.Price,
		MaterialCost: orderCreateDTO.MaterialCost,
	}, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func formValue(form *multipart.Form, key string) (string, bool) {
	values := form.Value[key]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// parseAmount: пустое значение означает, что поле не передано.
func parseAmount(form *multipart.Form, key string) (*float64, error) {
	raw, ok := formValue(form, key)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return nil, nil
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errInvalidForm
	}
	return &amount, nil
}
