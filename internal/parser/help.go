package parser

// HelpText es la respuesta fija para la intención help: ejemplos de
// órdenes que el intérprete entiende. Es dato, no lógica; se puede
// cambiar sin tocar el parseo.
const HelpText = `Puedes decirme cosas como:
- "Vender 2 Paceñas" o "Se vendió una caja de Singani"
- "¿Cuánto cuesta el Fernet?" / "¿Cuántas Paceñas quedan?"
- "Llegaron 12 cajas de Paceña"
- "Crear producto Ron Abuelo precio venta 45 compra 30"
- "Crear categorías Cerveza, Vino y Whisky"
- "Prestar 2 cervezas a Juan" / "Juan pagó su préstamo"
- "Cambiar precio del Singani a 80"
- "¿Qué productos están por acabarse?"
- "Muéstrame los más vendidos" / "Resumen del día"
- "Llévame a reportes"`
