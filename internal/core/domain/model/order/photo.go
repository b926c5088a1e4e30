package order

import (
	"errors"
	"fmt"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/errs"
)

// ErrPhotoIsNotConstructed is returned when a Photo was not created through
// NewPhoto or RestorePhoto.
var ErrPhotoIsNotConstructed = errors.New("Photo must be created via NewPhoto or RestorePhoto constructor")

// PhotoType is the closed set of evidence photo kinds an order can carry.
type PhotoType int

const (
	// PhotoTypeUnknown represents an invalid or undefined photo type.
	PhotoTypeUnknown PhotoType = iota

	// PhotoTypeBefore documents the print bed or raw material before
	// production. Attachable while the order is paid or in production.
	PhotoTypeBefore

	// PhotoTypeAfter documents the finished object. Required before a
	// producer can complete production.
	PhotoTypeAfter

	// PhotoTypeEvidence documents a problem raised during completion or a
	// dispute.
	PhotoTypeEvidence
)

func getPhotoTypeStrings() map[PhotoType]string {
	return map[PhotoType]string{
		PhotoTypeUnknown:  "unknown",
		PhotoTypeBefore:   "before",
		PhotoTypeAfter:    "after",
		PhotoTypeEvidence: "evidence",
	}
}

// PhotoTypeFromString parses the persisted string form of a photo type.
func PhotoTypeFromString(value string) (PhotoType, error) {
	for photoType, str := range getPhotoTypeStrings() {
		if photoType != PhotoTypeUnknown && str == value {
			return photoType, nil
		}
	}
	return PhotoTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"photo type is invalid",
		fmt.Errorf("%q is not a valid photo type", value),
	)
}

// String returns the persisted name of the photo type.
func (t PhotoType) String() string {
	if str, ok := getPhotoTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the PhotoType value is valid.
func (t PhotoType) Validate() error {
	if t == PhotoTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("photo type is invalid",
			fmt.Errorf("%d is not a valid photo type", t))
	}
	if _, ok := getPhotoTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("photo type is invalid",
			fmt.Errorf("%d is not a valid photo type", t))
	}
	return nil
}

// CanAttachAt reports whether a photo of this type may be attached while the
// order is in the given status.
func (t PhotoType) CanAttachAt(status Status) bool {
	switch t {
	case PhotoTypeBefore:
		return status == Paid || status == InProduction
	case PhotoTypeAfter:
		return status == Paid || status == InProduction || status == CompletedByProducer
	case PhotoTypeEvidence:
		return status == CompletedByProducer || status == DisputeOpen
	default:
		return false
	}
}

// Photo is an evidence photo attached to an order. The binary lives in object
// storage; the entity carries only its reference.
type Photo struct {
	id         kernel.UUID
	orderID    kernel.UUID
	uploaderID kernel.UUID
	photoType  PhotoType
	storageRef string
	caption    string
	uploadedAt time.Time
	archived   bool

	isConstructed bool
}

// NewPhoto creates a Photo entity for a stored image.
func NewPhoto(
	id kernel.UUID,
	orderID kernel.UUID,
	uploaderID kernel.UUID,
	photoType PhotoType,
	storageRef string,
	caption string,
	uploadedAt time.Time,
) (*Photo, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), uploaderID.Validate()); err != nil {
		return nil, err
	}
	if err := photoType.Validate(); err != nil {
		return nil, err
	}
	if storageRef == "" {
		return nil, errs.NewValueIsRequiredError("storageRef")
	}

	return &Photo{
		id:            id,
		orderID:       orderID,
		uploaderID:    uploaderID,
		photoType:     photoType,
		storageRef:    storageRef,
		caption:       caption,
		uploadedAt:    uploadedAt,
		isConstructed: true,
	}, nil
}

// RestorePhoto reconstructs a Photo from persisted state.
func RestorePhoto(
	id kernel.UUID,
	orderID kernel.UUID,
	uploaderID kernel.UUID,
	photoType PhotoType,
	storageRef string,
	caption string,
	uploadedAt time.Time,
	archived bool,
) (*Photo, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	return &Photo{
		id:            id,
		orderID:       orderID,
		uploaderID:    uploaderID,
		photoType:     photoType,
		storageRef:    storageRef,
		caption:       caption,
		uploadedAt:    uploadedAt,
		archived:      archived,
		isConstructed: true,
	}, nil
}

// Validate ensures the photo was created through a constructor.
func (p *Photo) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPhotoIsNotConstructed
	}
	return nil
}

// ID returns the photo's unique identifier.
func (p *Photo) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order the photo is attached to.
func (p *Photo) OrderID() kernel.UUID {
	return p.orderID
}

// UploaderID returns the user who attached the photo.
func (p *Photo) UploaderID() kernel.UUID {
	return p.uploaderID
}

// Type returns the photo's evidence kind.
func (p *Photo) Type() PhotoType {
	return p.photoType
}

// StorageRef returns the object storage reference of the image bytes.
func (p *Photo) StorageRef() string {
	return p.storageRef
}

// Caption returns the optional caption.
func (p *Photo) Caption() string {
	return p.caption
}

// UploadedAt returns when the photo was attached.
func (p *Photo) UploadedAt() time.Time {
	return p.uploadedAt
}

// Archived reports whether housekeeping moved the photo to cold storage.
func (p *Photo) Archived() bool {
	return p.archived
}

// Archive marks the photo as moved to cold storage.
func (p *Photo) Archive() {
	p.archived = true
}
