// Методы клиента для работы с аптечкой: добавление, список, удаление.
package api

import "fmt"

// AddMedicineRequest описывает тело запроса добавления лекарства.
//
// Quantity отправляется строкой: сервер принимает и число, и числовую
// строку, а валидацию значения выполняет сам.
type AddMedicineRequest struct {
	Name     string `json:"name"`
	Batch    string `json:"batch"`
	Expiry   string `json:"expiry"`
	Barcode  string `json:"barcode"`
	Quantity string `json:"quantity"`
}

// MessageResponse описывает ответ-подтверждение сервера.
type MessageResponse struct {
	Message string `json:"message"`
}

// Medicine описывает запись аптечки в ответе сервера.
//
// DaysLeft и Status вычисляются сервером на момент запроса.
type Medicine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Batch    string `json:"batch"`
	Expiry   string `json:"expiry"`
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
	DaysLeft int    `json:"days_left"`
	Status   string `json:"status"`
}

// AddMedicine добавляет лекарство в аптечку пользователя.
//
// Выполняет запрос:
//
//	POST /add
//
// Параметры:
//   - accessToken: access-токен пользователя (Authorization: Bearer <token>)
//   - req: данные лекарства (name/batch/expiry/barcode/quantity)
//
// Возвращает:
//   - MessageResponse
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) AddMedicine(accessToken string, req AddMedicineRequest) (MessageResponse, error) {
	var resp MessageResponse
	err := c.PostJSON("/add", req, &resp, accessToken)
	return resp, err
}

// ListMedicines загружает все лекарства пользователя с сервера.
//
// Выполняет запрос:
//
//	GET /medicines
//
// Параметры:
//   - accessToken: access-токен пользователя (Authorization: Bearer <token>)
//
// Возвращает:
//   - массив Medicine
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) ListMedicines(accessToken string) ([]Medicine, error) {
	var resp []Medicine
	err := c.GetJSON("/medicines", &resp, accessToken)
	return resp, err
}

// DeleteMedicine удаляет лекарство на сервере по ID.
//
// Выполняет запрос:
//
//	DELETE /delete/{id}
//
// Параметры:
//   - accessToken: access-токен пользователя (Authorization: Bearer <token>)
//   - id: идентификатор лекарства (uuid)
//
// Возвращает:
//   - MessageResponse
//   - ошибку при неуспешном статусе (не 2xx) или ошибке декодирования JSON.
func (c *Client) DeleteMedicine(accessToken, id string) (MessageResponse, error) {
	var resp MessageResponse
	err := c.DeleteJSON(fmt.Sprintf("/delete/%s", id), &resp, accessToken)
	return resp, err
}
