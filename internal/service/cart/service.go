package cart

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/internal/infra/session"
	"github.com/m04kA/SMC-StorefrontService/internal/service/cart/models"
)

// Service сервис операций с корзиной сессии: чтение, обновление количества,
// удаление и очистка. Добавление товара - отдельный use case с расчетом цены
// и валидацией
type Service struct {
	sessions SessionStore
	catalog  CatalogReader
	logger   Logger
}

// NewService создает новый экземпляр сервиса корзины
func NewService(sessions SessionStore, catalog CatalogReader, logger Logger) *Service {
	return &Service{
		sessions: sessions,
		catalog:  catalog,
		logger:   logger,
	}
}

// GetCart возвращает снимок корзины с пересчитанными агрегатами
func (s *Service) GetCart(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		s.logger.Warn("GetCart: session %s not found", sessionID)
		return nil, ErrSessionNotFound
	}

	var resp *models.CartResponse
	_ = sess.Do(func(sess *session.Session) error {
		resp = models.FromLedger(sess.Cart)
		return nil
	})
	return resp, nil
}

// UpdateQuantity заменяет количество позиции
// Количество ноль или меньше удаляет позицию; неизвестный id - no-op
// Для стандартных товаров новое количество проверяется против остатка
// варианта на складе, и при нехватке корзина не изменяется
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*models.CartResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		s.logger.Warn("UpdateQuantity: session %s not found", sessionID)
		return nil, ErrSessionNotFound
	}
	if quantity > domain.MaxQuantityPerLine {
		s.logger.Warn("UpdateQuantity: session=%s item=%s quantity %d over cap", sessionID, itemID, quantity)
		return nil, ErrQuantityTooLarge
	}

	var resp *models.CartResponse
	err = sess.Do(func(sess *session.Session) error {
		if quantity > 0 {
			item, ok := sess.Cart.ItemByID(itemID)
			if ok && !item.IsCustom && item.VariantID != "" {
				if err := s.checkStock(ctx, item, quantity); err != nil {
					return err
				}
			}
		}

		sess.Cart.UpdateQuantity(itemID, quantity)
		resp = models.FromLedger(sess.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateQuantity: session=%s item=%s quantity=%d", sessionID, itemID, quantity)
	return resp, nil
}

// RemoveItem удаляет позицию. Неизвестный id - no-op
func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) (*models.CartResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		s.logger.Warn("RemoveItem: session %s not found", sessionID)
		return nil, ErrSessionNotFound
	}

	var resp *models.CartResponse
	_ = sess.Do(func(sess *session.Session) error {
		sess.Cart.RemoveItem(itemID)
		resp = models.FromLedger(sess.Cart)
		return nil
	})

	s.logger.Info("RemoveItem: session=%s item=%s", sessionID, itemID)
	return resp, nil
}

// ClearCart опустошает корзину
func (s *Service) ClearCart(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		s.logger.Warn("ClearCart: session %s not found", sessionID)
		return nil, ErrSessionNotFound
	}

	var resp *models.CartResponse
	_ = sess.Do(func(sess *session.Session) error {
		sess.Cart.Clear()
		resp = models.FromLedger(sess.Cart)
		return nil
	})

	s.logger.Info("ClearCart: session=%s", sessionID)
	return resp, nil
}

func (s *Service) checkStock(ctx context.Context, item domain.CartItem, quantity int) error {
	product, err := s.catalog.GetBySlug(ctx, item.ProductSlug)
	if err != nil {
		s.logger.Error("checkStock: failed to load product %s: %v", item.ProductSlug, err)
		return fmt.Errorf("%w: load product: %v", ErrInternal, err)
	}
	if product.StandardOptions == nil {
		return nil
	}
	variant, ok := product.StandardOptions.VariantByID(item.VariantID)
	if !ok {
		return nil
	}
	if quantity > variant.Stock {
		s.logger.Warn("checkStock: variant %s/%s stock %d below requested %d",
			item.ProductSlug, item.VariantID, variant.Stock, quantity)
		return ErrInsufficientStock
	}
	return nil
}
