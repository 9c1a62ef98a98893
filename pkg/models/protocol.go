package models

type Protocol string

const (
	ProtocolModbusTCP Protocol = "MODBUS_TCP"
	ProtocolModbusRTU Protocol = "MODBUS_RTU"
	ProtocolIEC104    Protocol = "IEC104"
	ProtocolBACnetIP  Protocol = "BACNET_IP"
	ProtocolMelsec    Protocol = "MELSEC"
)

// ProtocolConfig is a tagged variant: Device.Protocol selects which one of
// the pointers is populated. Stored as a JSON column rather than a flat row
// of nullable fields.
type ProtocolConfig struct {
	ModbusTCP *ModbusTCPConfig `json:"modbusTcp,omitempty"`
	ModbusRTU *ModbusRTUConfig `json:"modbusRtu,omitempty"`
	IEC104    *IEC104Config    `json:"iec104,omitempty"`
	BACnetIP  *BACnetIPConfig  `json:"bacnetIp,omitempty"`
	Melsec    *MelsecConfig    `json:"melsec,omitempty"`
}

type ModbusTCPConfig struct {
	IPAddress string `json:"ipAddress"`
	Port      int    `json:"port"`
	SlaveID   int    `json:"slaveId"`
}

type ModbusRTUConfig struct {
	SerialPort string `json:"serialPort"`
	BaudRate   int    `json:"baudRate"`
	DataBits   int    `json:"dataBits"`
	Parity     string `json:"parity"`
	StopBits   int    `json:"stopBits"`
}

type IEC104Config struct {
	IPAddress     string `json:"ipAddress"`
	Port          int    `json:"port"`
	CommonAddress int    `json:"commonAddress"`
}

type BACnetIPConfig struct {
	IPAddress      string `json:"ipAddress"`
	Port           int    `json:"port"`
	DeviceInstance int    `json:"deviceInstance"`
}

type MelsecConfig struct {
	IPAddress     string `json:"ipAddress"`
	Port          int    `json:"port"`
	NetworkNumber int    `json:"networkNumber"`
	StationNumber int    `json:"stationNumber"`
}
